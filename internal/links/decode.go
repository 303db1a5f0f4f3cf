package links

import (
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/jsonl"
	"crawlfilter/internal/models"
	"math"

	"github.com/tidwall/gjson"
)

// Decode reads the src, tag, url and code fields of a record.
func Decode(rec gjson.Result) (*models.LinkRecord, error) {
	if !rec.IsObject() {
		return nil, jsonl.FieldType("record", "an object")
	}

	var (
		lr  models.LinkRecord
		err error
	)
	if lr.Src, err = stringField(rec, consts.RecSrc); err != nil {
		return nil, err
	}
	if lr.Tag, err = stringField(rec, consts.RecTag); err != nil {
		return nil, err
	}
	if lr.URL, err = stringField(rec, consts.RecURL); err != nil {
		return nil, err
	}
	if lr.Code, err = intField(rec, consts.RecCode); err != nil {
		return nil, err
	}
	return &lr, nil
}

// isInfoLevel reports whether the record's level is exactly the info level.
//
// The level must be present; any non-numeric level counts as a different level.
func isInfoLevel(rec gjson.Result) (bool, error) {
	if !rec.IsObject() {
		return false, jsonl.FieldType("record", "an object")
	}
	v := jsonl.Field(rec, consts.RecLevel)
	if !v.Exists() {
		return false, jsonl.MissingField(consts.RecLevel)
	}
	return v.Type == gjson.Number && v.Num == consts.InfoLevel, nil
}

func stringField(rec gjson.Result, key string) (string, error) {
	v := jsonl.Field(rec, key)
	if !v.Exists() {
		return "", jsonl.MissingField(key)
	}
	if v.Type != gjson.String {
		return "", jsonl.FieldType(key, "a string")
	}
	return v.Str, nil
}

func intField(rec gjson.Result, key string) (int64, error) {
	v := jsonl.Field(rec, key)
	if !v.Exists() {
		return 0, jsonl.MissingField(key)
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, jsonl.FieldType(key, "an integer")
	}
	return v.Int(), nil
}
