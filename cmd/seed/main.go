// Command seed wipes the database and loads a demo dataset: a CSM team,
// regional customer accounts, and a spread of activities, risks,
// opportunities and tasks derived from each customer's health.
package main

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/convin-ai/csm-backend/config"
	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/service"
	"github.com/convin-ai/csm-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type companySeed struct {
	name     string
	industry string
	region   string
	arr      float64
}

var companies = []companySeed{
	{"Zomato", "Food Delivery", "South India", 2500000},
	{"Swiggy", "Food Delivery", "South India", 2800000},
	{"PhonePe", "Fintech", "South India", 3500000},
	{"HDFC Bank", "Banking", "West India", 5000000},
	{"ICICI Bank", "Banking", "West India", 4500000},
	{"Axis Bank", "Banking", "West India", 4000000},
	{"PolicyBazaar", "InsurTech", "North India", 1800000},
	{"Ola Cabs", "Transportation", "South India", 2200000},
	{"Myntra", "E-commerce", "South India", 1500000},
	{"Flipkart", "E-commerce", "South India", 6000000},
	{"Paytm", "Fintech", "North India", 3000000},
	{"MakeMyTrip", "Travel", "North India", 2000000},
	{"OYO Rooms", "Hospitality", "North India", 1700000},
	{"BigBasket", "E-commerce", "South India", 1300000},
	{"Urban Company", "Services", "North India", 900000},
	{"Cred", "Fintech", "South India", 1100000},
	{"Razorpay", "Fintech", "South India", 2700000},
	{"Byju's", "EdTech", "South India", 3200000},
	{"Unacademy", "EdTech", "South India", 1600000},
	{"Lenskart", "E-commerce", "North India", 1400000},
	{"Nykaa", "E-commerce", "West India", 1900000},
	{"Delhivery", "Logistics", "North India", 2100000},
	{"Dunzo", "Delivery", "South India", 800000},
	{"Grofers (Blinkit)", "E-commerce", "North India", 1200000},
	{"Meesho", "E-commerce", "South India", 1000000},
	{"Dream11", "Gaming", "West India", 2600000},
	{"MPL", "Gaming", "South India", 1500000},
	{"Cars24", "Auto", "North India", 1300000},
	{"Spinny", "Auto", "North India", 900000},
	{"Zerodha", "Fintech", "South India", 4200000},
}

type csmSeed struct {
	name   string
	email  string
	region string
}

var csmTeam = []csmSeed{
	{"Priya Sharma", "priya.sharma@convin.ai", "South India"},
	{"Rajesh Kumar", "rajesh.kumar@convin.ai", "South India"},
	{"Ananya Reddy", "ananya.reddy@convin.ai", "South India"},
	{"Vikram Patel", "vikram.patel@convin.ai", "West India"},
	{"Neha Desai", "neha.desai@convin.ai", "West India"},
	{"Amit Shah", "amit.shah@convin.ai", "West India"},
	{"Rohit Verma", "rohit.verma@convin.ai", "North India"},
	{"Kavita Singh", "kavita.singh@convin.ai", "North India"},
	{"Arjun Malhotra", "arjun.malhotra@convin.ai", "North India"},
	{"Sneha Gupta", "sneha.gupta@convin.ai", "North India"},
}

var products = []string{"Post Call", "RTA", "AI Phone Call", "Convin Sense", "CRM Upgrade", "STT/TTS Solution"}

var activityTypes = []string{
	"Weekly Sync", "QBR", "MBR", "In-Person Visit", "Product Feedback",
	"Feature Request", "Training Session", "Support Escalation", "Phone Call",
	"Executive Briefing", "Onboarding Session", "Renewal Discussion",
}

var riskCategories = map[string][]string{
	"Product Usage Risks":      {"Low Login Frequency", "Inactive Users", "Low Feature Adoption"},
	"Onboarding Risks":         {"Delayed Milestones", "Low Session Attendance"},
	"Support/Operations Risks": {"SLA Breaches", "High Unresolved Ticket Volume"},
	"Relationship Risks":       {"Stakeholder Churn", "Champion Left Organization"},
	"Commercial/Billing Risks": {"Renewal Concerns Expressed", "Budget Constraints"},
}

var opportunityTypes = []string{"Upsell", "Cross-sell", "Expansion", "Renewal", "New Product"}

func main() {
	utils.InitLogger()
	cfg := config.LoadConfig()

	store, err := repository.NewMongoStore(cfg.MongoURL, cfg.DBName)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer store.Close(context.Background())

	if err := store.InitializeCollections(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("collection initialization failed")
	}

	clearCollections(ctx, store)

	users := seedUsers(ctx, store)
	customers := seedCustomers(ctx, store, users)
	seedActivities(ctx, store, customers)
	seedRisks(ctx, store, customers)
	seedOpportunities(ctx, store, customers)
	seedTasks(ctx, store, customers)

	utils.Logger.Info().Msg("seeding completed")
	utils.Logger.Info().Msg("admin login: admin@convin.ai / admin123")
	utils.Logger.Info().Msg("CSM login: priya.sharma@convin.ai / password123")
}

func clearCollections(ctx context.Context, store *repository.MongoStore) {
	for _, collection := range []string{
		repository.UsersCollection,
		repository.CustomersCollection,
		repository.ActivitiesCollection,
		repository.RisksCollection,
		repository.OpportunitiesCollection,
		repository.TasksCollection,
		repository.ReportsCollection,
	} {
		if err := store.DeleteMany(ctx, collection, bson.M{}); err != nil {
			utils.Logger.Fatal().Err(err).Str("collection", collection).Msg("clear failed")
		}
	}
	utils.Logger.Info().Msg("database cleared")
}

func seedUsers(ctx context.Context, store *repository.MongoStore) []models.User {
	adminPassword, _ := utils.HashPassword("admin123")
	csmPassword, _ := utils.HashPassword("password123")

	users := []models.User{{
		ID:        utils.NewID(),
		Email:     "admin@convin.ai",
		Name:      "Admin User",
		Role:      models.UserRoleADMIN,
		Password:  adminPassword,
		CreatedAt: utils.NowUTC(),
	}}

	for _, csm := range csmTeam {
		users = append(users, models.User{
			ID:        utils.NewID(),
			Email:     csm.email,
			Name:      csm.name,
			Role:      models.UserRoleCSM,
			Password:  csmPassword,
			CreatedAt: utils.NowUTC(),
		})
	}

	for _, user := range users {
		if err := store.Insert(ctx, repository.UsersCollection, user); err != nil {
			utils.Logger.Fatal().Err(err).Msg("user seed failed")
		}
	}

	utils.Logger.Info().Int("count", len(users)).Msg("users seeded")
	return users
}

// csmForRegion assigns customers to a CSM working the same region.
func csmForRegion(users []models.User, region string) models.User {
	var regional []models.User
	for i, csm := range csmTeam {
		if csm.region == region {
			regional = append(regional, users[i+1])
		}
	}
	if len(regional) == 0 {
		return users[1]
	}
	return regional[rand.Intn(len(regional))]
}

func seedCustomers(ctx context.Context, store *repository.MongoStore, users []models.User) []models.Customer {
	now := utils.NowUTC()
	customers := make([]models.Customer, 0, len(companies))

	for _, company := range companies {
		csm := csmForRegion(users, company.region)

		activeUsers := 50 + rand.Intn(450)
		totalUsers := int(float64(activeUsers) * (1.1 + rand.Float64()*0.4))
		callsProcessed := 10000 + rand.Intn(490000)

		contractStart := now.AddDate(0, 0, -(180 + rand.Intn(550)))
		contractEnd := contractStart.AddDate(1, 0, 0)
		goLive := contractStart.AddDate(0, 0, 30+rand.Intn(60))

		onboarding := models.OnboardingCompleted
		if now.Sub(goLive) < 30*24*time.Hour {
			onboarding = models.OnboardingInProgress
		}

		lastActivity := now.AddDate(0, 0, -rand.Intn(30))

		customer := models.Customer{
			ID:                 utils.NewID(),
			CompanyName:        company.name,
			Website:            "https://" + strings.ReplaceAll(strings.ToLower(company.name), " ", "") + ".com",
			Industry:           company.industry,
			Region:             company.region,
			PlanType:           models.PlanTypeLicense,
			ARR:                company.arr,
			ContractStartDate:  contractStart.Format("2006-01-02"),
			ContractEndDate:    contractEnd.Format("2006-01-02"),
			RenewalDate:        contractEnd.Format("2006-01-02"),
			GoLiveDate:         goLive.Format("2006-01-02"),
			ProductsPurchased:  sampleProducts(),
			OnboardingStatus:   onboarding,
			PrimaryObjective:   pick([]string{"QA Automation", "Training", "Audit", "Compliance", "Performance Management"}),
			CallsProcessed:     callsProcessed,
			ActiveUsers:        activeUsers,
			TotalLicensedUsers: totalUsers,
			CSMOwnerID:         csm.ID,
			CSMOwnerName:       csm.Name,
			Tags:               []string{},
			Stakeholders:       []models.Stakeholder{},
			LastActivityDate:   lastActivity.Format(time.RFC3339),
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		customer.HealthScore = service.CalculateHealthScore(service.SignalsFromCustomer(customer))
		customer.HealthStatus = service.DetermineHealthStatus(customer.HealthScore)

		switch {
		case customer.HealthScore > 75:
			customer.RiskLevel = "Low"
		case customer.HealthScore > 60:
			customer.RiskLevel = "Medium"
		default:
			customer.RiskLevel = "High"
		}

		if err := store.Insert(ctx, repository.CustomersCollection, customer); err != nil {
			utils.Logger.Fatal().Err(err).Msg("customer seed failed")
		}
		customers = append(customers, customer)
	}

	utils.Logger.Info().Int("count", len(customers)).Msg("customers seeded")
	return customers
}

func seedActivities(ctx context.Context, store *repository.MongoStore, customers []models.Customer) {
	summaries := []string{
		"Discussed quarterly performance metrics and identified improvement areas.",
		"Reviewed product adoption and usage trends. Customer showing strong engagement.",
		"Training session conducted for agents on new features.",
		"Addressed support tickets and escalations. Resolution time improved.",
		"Strategic planning session for expansion to additional departments.",
		"Product feedback collected. Customer requested enhanced reporting capabilities.",
		"Renewal discussion initiated. Customer expressed satisfaction with ROI.",
		"Onboarding milestone achieved. All users certified on platform.",
	}

	count := 0
	for _, customer := range customers {
		for i := 0; i < 3+rand.Intn(6); i++ {
			activityDate := utils.NowUTC().AddDate(0, 0, -rand.Intn(180))
			activityType := pick(activityTypes)

			activity := models.Activity{
				ID:               utils.NewID(),
				CustomerID:       customer.ID,
				CustomerName:     customer.CompanyName,
				ActivityType:     activityType,
				ActivityDate:     activityDate,
				Title:            activityType + " with " + customer.CompanyName,
				Summary:          pick(summaries),
				InternalNotes:    "Follow-up required on action items discussed.",
				Sentiment:        weightedSentiment(),
				FollowUpRequired: rand.Intn(2) == 0,
				CSMID:            customer.CSMOwnerID,
				CSMName:          customer.CSMOwnerName,
				CreatedAt:        activityDate,
			}
			if activity.FollowUpRequired {
				activity.FollowUpDate = activityDate.AddDate(0, 0, 7).Format("2006-01-02")
				activity.FollowUpStatus = pick([]string{"Pending", "Completed"})
			}

			if err := store.Insert(ctx, repository.ActivitiesCollection, activity); err != nil {
				utils.Logger.Fatal().Err(err).Msg("activity seed failed")
			}
			count++
		}
	}

	utils.Logger.Info().Int("count", count).Msg("activities seeded")
}

func seedRisks(ctx context.Context, store *repository.MongoStore, customers []models.Customer) {
	count := 0
	for _, customer := range customers {
		if customer.HealthStatus == models.HealthStatusHealthy {
			continue
		}

		for i := 0; i < 1+rand.Intn(2); i++ {
			category := pickKey(riskCategories)
			subcategory := pick(riskCategories[category])

			severity := models.RiskSeverity(pick([]string{"Medium", "High"}))
			if customer.HealthStatus == models.HealthStatusCritical {
				severity = models.RiskSeverity(pick([]string{"High", "Critical"}))
			}

			identified := utils.NowUTC().AddDate(0, 0, -(5 + rand.Intn(55)))

			risk := models.Risk{
				ID:                   utils.NewID(),
				CustomerID:           customer.ID,
				CustomerName:         customer.CompanyName,
				Category:             category,
				Subcategory:          subcategory,
				Severity:             severity,
				Status:               models.RiskStatus(pick([]string{"Open", "In Progress", "Monitoring"})),
				Title:                subcategory + " at " + customer.CompanyName,
				Description:          "Risk identified during regular health check. Requires attention and mitigation.",
				ImpactDescription:    "Could impact renewal and expansion opportunities.",
				MitigationPlan:       "Schedule executive alignment call, provide additional training, weekly progress reviews.",
				RevenueImpact:        float64(50000 + rand.Intn(450000)),
				ChurnProbability:     20 + rand.Intn(60),
				IdentifiedDate:       identified.Format("2006-01-02"),
				TargetResolutionDate: identified.AddDate(0, 0, 30).Format("2006-01-02"),
				AssignedToID:         customer.CSMOwnerID,
				AssignedToName:       customer.CSMOwnerName,
				CreatedAt:            identified,
				UpdatedAt:            utils.NowUTC(),
			}

			if err := store.Insert(ctx, repository.RisksCollection, risk); err != nil {
				utils.Logger.Fatal().Err(err).Msg("risk seed failed")
			}
			count++
		}
	}

	utils.Logger.Info().Int("count", count).Msg("risks seeded")
}

func seedOpportunities(ctx context.Context, store *repository.MongoStore, customers []models.Customer) {
	count := 0
	for _, customer := range customers {
		if customer.HealthStatus != models.HealthStatusHealthy || rand.Intn(2) == 0 {
			continue
		}

		opportunityType := pick(opportunityTypes)
		created := utils.NowUTC().AddDate(0, 0, -(10 + rand.Intn(50)))

		opportunity := models.Opportunity{
			ID:                utils.NewID(),
			CustomerID:        customer.ID,
			CustomerName:      customer.CompanyName,
			OpportunityType:   opportunityType,
			Title:             opportunityType + " opportunity for " + customer.CompanyName,
			Description:       "Strategic expansion opportunity identified during quarterly business review.",
			Value:             float64(50000 + rand.Intn(950000)),
			Probability:       40 + rand.Intn(50),
			Stage:             pick([]string{"Identified", "Qualified", "Proposal", "Negotiation"}),
			ExpectedCloseDate: utils.NowUTC().AddDate(0, 0, 30+rand.Intn(150)).Format("2006-01-02"),
			OwnerID:           customer.CSMOwnerID,
			OwnerName:         customer.CSMOwnerName,
			CreatedAt:         created,
			UpdatedAt:         utils.NowUTC(),
		}

		if err := store.Insert(ctx, repository.OpportunitiesCollection, opportunity); err != nil {
			utils.Logger.Fatal().Err(err).Msg("opportunity seed failed")
		}
		count++
	}

	utils.Logger.Info().Int("count", count).Msg("opportunities seeded")
}

func seedTasks(ctx context.Context, store *repository.MongoStore, customers []models.Customer) {
	taskTypes := []string{"Follow-up Call", "QBR Preparation", "Escalation Review", "Renewal Planning", "Training Delivery"}

	count := 0
	for _, customer := range customers {
		if rand.Intn(3) == 0 {
			continue
		}

		now := utils.NowUTC()
		taskType := pick(taskTypes)

		task := models.Task{
			ID:             utils.NewID(),
			CustomerID:     customer.ID,
			CustomerName:   customer.CompanyName,
			TaskType:       taskType,
			Title:          taskType + " for " + customer.CompanyName,
			Priority:       models.TaskPriority(pick([]string{"Low", "Medium", "High"})),
			Status:         models.TaskStatus(pick([]string{"Not Started", "In Progress"})),
			AssignedToID:   customer.CSMOwnerID,
			AssignedToName: customer.CSMOwnerName,
			DueDate:        now.AddDate(0, 0, -7+rand.Intn(30)).Format("2006-01-02"),
			CreatedByID:    customer.CSMOwnerID,
			CreatedByName:  customer.CSMOwnerName,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := store.Insert(ctx, repository.TasksCollection, task); err != nil {
			utils.Logger.Fatal().Err(err).Msg("task seed failed")
		}
		count++
	}

	utils.Logger.Info().Int("count", count).Msg("tasks seeded")
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

func pickKey(m map[string][]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys[rand.Intn(len(keys))]
}

func sampleProducts() []string {
	n := 2 + rand.Intn(3)
	shuffled := append([]string(nil), products...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:n]
}

func weightedSentiment() string {
	switch r := rand.Float64(); {
	case r < 0.6:
		return "Positive"
	case r < 0.9:
		return "Neutral"
	default:
		return "Negative"
	}
}
