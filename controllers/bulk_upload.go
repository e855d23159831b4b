package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/repository"
	"github.com/convin-ai/csm-backend/service"
	"github.com/convin-ai/csm-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// BulkUpload converts an uploaded CSV into customer records with per-row
// isolation: one row's failure never aborts the batch. Row numbers in the
// error list are real file line numbers (header is line 1).
func (cc *CustomerController) BulkUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.HandleError(c, utils.NewValidationError("No file provided"))
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		utils.HandleError(c, utils.NewValidationError("Only CSV files are accepted"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		utils.HandleError(c, utils.NewValidationError("Empty or unreadable CSV file"))
		return
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	result := models.BulkUploadResult{Errors: []models.BulkUploadRowError{}}

	// Data rows start at line 2, after the header.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.TotalRows++
			result.ErrorCount++
			result.Errors = append(result.Errors, models.BulkUploadRowError{
				Row:   rowNum,
				Error: err.Error(),
			})
			continue
		}

		result.TotalRows++

		row := make(service.CustomerRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		if rowErr := cc.importRow(c, row); rowErr != "" {
			result.ErrorCount++
			result.Errors = append(result.Errors, models.BulkUploadRowError{
				Row:   rowNum,
				Error: rowErr,
			})
			continue
		}

		result.SuccessCount++
	}

	utils.LogInfo(map[string]interface{}{
		"total":   result.TotalRows,
		"success": result.SuccessCount,
		"errors":  result.ErrorCount,
	}, "bulk upload finished")

	c.JSON(http.StatusOK, result)
}

// importRow processes one CSV row. It returns an empty string on success
// and a row-level error message otherwise.
func (cc *CustomerController) importRow(c *gin.Context, row service.CustomerRow) string {
	ctx := c.Request.Context()

	companyName := row.CompanyName()
	if companyName == "" {
		return "Missing company_name"
	}

	var existing models.Customer
	err := cc.store.FindOne(ctx, repository.CustomersCollection, bson.M{"company_name": companyName}, &existing)
	if err == nil {
		return fmt.Sprintf("Customer '%s' already exists", companyName)
	}
	if err != repository.ErrNotFound {
		return err.Error()
	}

	// An unresolvable CSM email leaves the owner reference unset, it is
	// never a row failure.
	var csmOwnerID, csmOwnerName string
	if email := row.CSMEmail(); email != "" {
		var csm models.User
		if err := cc.store.FindOne(ctx, repository.UsersCollection, bson.M{"email": email}, &csm); err == nil {
			csmOwnerID = csm.ID
			csmOwnerName = csm.Name
		}
	}

	customer, err := service.CustomerFromRow(row, csmOwnerID, csmOwnerName, utils.NowUTC())
	if err != nil {
		return err.Error()
	}

	if err := cc.store.Insert(ctx, repository.CustomersCollection, customer); err != nil {
		return err.Error()
	}

	return ""
}
