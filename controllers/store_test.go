package controllers

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/convin-ai/csm-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory Store used by handler tests. Documents round-trip
// through bson so stored values look exactly as they would coming back from
// the driver.
type fakeStore struct {
	collections map[string][]bson.M
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]bson.M)}
}

func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// normalize flattens bson and Go scalar types so int32/int64/float64 and
// typed strings compare as equals.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case primitive.DateTime:
		return val.Time().UTC().Format("2006-01-02T15:04:05.000")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

func valuesEqual(a, b interface{}) bool {
	return normalize(a) == normalize(b)
}

func matchesCondition(docValue, condition interface{}) bool {
	condDoc, ok := condition.(bson.M)
	if !ok {
		return valuesEqual(docValue, condition)
	}

	for op, operand := range condDoc {
		switch op {
		case "$ne":
			if valuesEqual(docValue, operand) {
				return false
			}
		case "$lt":
			docStr, ok1 := normalize(docValue).(string)
			opStr, ok2 := normalize(operand).(string)
			if !ok1 || !ok2 || !(docStr < opStr) {
				return false
			}
		case "$in":
			if !inList(docValue, operand) {
				return false
			}
		case "$nin":
			if inList(docValue, operand) {
				return false
			}
		default:
			panic(fmt.Sprintf("fakeStore: unsupported operator %q", op))
		}
	}
	return true
}

func inList(docValue, operand interface{}) bool {
	list := reflect.ValueOf(operand)
	if list.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < list.Len(); i++ {
		if valuesEqual(docValue, list.Index(i).Interface()) {
			return true
		}
	}
	return false
}

func matches(doc bson.M, filter bson.M) bool {
	for key, condition := range filter {
		if !matchesCondition(doc[key], condition) {
			return false
		}
	}
	return true
}

func (f *fakeStore) Insert(_ context.Context, collection string, doc interface{}) error {
	converted, err := toDoc(doc)
	if err != nil {
		return err
	}
	f.collections[collection] = append(f.collections[collection], converted)
	return nil
}

func (f *fakeStore) FindOne(_ context.Context, collection string, filter bson.M, out interface{}) error {
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			return fromDoc(doc, out)
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) FindAll(_ context.Context, collection string, filter bson.M, sortSpec bson.D, out interface{}) error {
	var matched []bson.M
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}

	if len(sortSpec) > 0 {
		key := sortSpec[0].Key
		desc := false
		if dir, ok := sortSpec[0].Value.(int); ok && dir < 0 {
			desc = true
		}
		sort.SliceStable(matched, func(i, j int) bool {
			a := fmt.Sprintf("%v", normalize(matched[i][key]))
			b := fmt.Sprintf("%v", normalize(matched[j][key]))
			if desc {
				return a > b
			}
			return a < b
		})
	}

	slicePtr := reflect.ValueOf(out).Elem()
	elemType := slicePtr.Type().Elem()
	result := reflect.MakeSlice(slicePtr.Type(), 0, len(matched))
	for _, doc := range matched {
		elem := reflect.New(elemType)
		if err := fromDoc(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slicePtr.Set(result)
	return nil
}

func (f *fakeStore) UpdateOne(_ context.Context, collection string, filter bson.M, set interface{}) error {
	setDoc, err := toDoc(set)
	if err != nil {
		return err
	}
	for i, doc := range f.collections[collection] {
		if matches(doc, filter) {
			for key, value := range setDoc {
				doc[key] = value
			}
			f.collections[collection][i] = doc
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) DeleteOne(_ context.Context, collection string, filter bson.M) error {
	for i, doc := range f.collections[collection] {
		if matches(doc, filter) {
			f.collections[collection] = append(f.collections[collection][:i], f.collections[collection][i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) Count(_ context.Context, collection string, filter bson.M) (int64, error) {
	var count int64
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) SumField(_ context.Context, collection string, filter bson.M, field string) (float64, error) {
	var total float64
	for _, doc := range f.collections[collection] {
		if matches(doc, filter) {
			if value, ok := normalize(doc[field]).(float64); ok {
				total += value
			}
		}
	}
	return total, nil
}
