package jsonl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestField(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		key    string
		want   string
		exists bool
	}{
		{"present", `{"src":"a","tag":"t"}`, "src", "a", true},
		{"missing", `{"tag":"t"}`, "src", "", false},
		{"repeated key keeps last", `{"src":"a","tag":"t","src":"b"}`, "src", "b", true},
		{"escaped key", `{"\u0073rc":"a"}`, "src", "a", true},
		{"not an object", `["src"]`, "src", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Field(gjson.Parse(tt.doc), tt.key)
			assert.Equal(t, tt.exists, v.Exists())
			assert.Equal(t, tt.want, v.String())
		})
	}
}
