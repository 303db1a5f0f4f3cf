package jsonl

import "github.com/tidwall/gjson"

// Field returns the value of key in obj.
//
// When the key is repeated the last occurrence wins.
func Field(obj gjson.Result, key string) gjson.Result {
	var v gjson.Result
	obj.ForEach(func(k, val gjson.Result) bool {
		if k.Str == key {
			v = val
		}
		return true
	})
	return v
}
