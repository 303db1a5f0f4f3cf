package links

import (
	"bytes"
	"context"
	"crawlfilter/internal/jsonl"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const widgetTagPath = "html/body/div.page/div#abcdefgh.column_paragraph/div.gato-events/x"

func runFilter(t *testing.T, f *Filter, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := f.Run(context.Background(), "", strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	return out.String(), err
}

func TestPlainMode(t *testing.T) {
	out, err := runFilter(t, NewFilter(ModePlain, nil),
		`{"src":"s","tag":"t","url":"u","code":200}`,
		`{"src":"https://a.example/p","tag":"html/a","url":"https://b.example/magnoliaAssets/cache1a2b/x.png","code":404,"lvl":2}`,
		`{"src":"s","tag":"`+widgetTagPath+`","url":"u","code":0}`,
		`{"src":"s","tag":"`+widgetTagPath+`","url":"u","code":0}`,
	)
	require.NoError(t, err)

	assert.Equal(t,
		"s\tt\tu\t200\n"+
			"https://a.example/p\thtml/a\thttps://b.example/magnoliaAssets/cache1a2b/x.png\t404\n"+
			"s\t"+widgetTagPath+"\tu\t0\n"+
			"s\t"+widgetTagPath+"\tu\t0\n",
		out)
}

func TestConsolidateSkipsOtherLevels(t *testing.T) {
	f := NewFilter(ModeConsolidate, nil)
	out, err := runFilter(t, f,
		`{"lvl":2,"src":"s","tag":"t","url":"u","code":200}`,
		`{"lvl":4}`,
		`{"lvl":"3","src":"s","tag":"t","url":"u","code":200}`,
		`{"lvl":3,"src":"s","tag":"div/section/a","url":"u","code":200}`,
	)
	require.NoError(t, err)

	assert.Equal(t, "s\ta\tu\t200\n", out)
	assert.Equal(t, 3, f.Stats().Skipped)
	assert.Equal(t, 1, f.Stats().Emitted)
}

func TestConsolidateWidgetDedup(t *testing.T) {
	f := NewFilter(ModeConsolidate, nil)
	out, err := runFilter(t, f,
		`{"lvl":3,"src":"s","tag":"`+widgetTagPath+`","url":"https://cal.example/e/1","code":200}`,
		`{"lvl":3,"src":"s","tag":"`+widgetTagPath+`","url":"https://cal.example/e/2","code":404}`,
		`{"lvl":3,"src":"other","tag":"`+widgetTagPath+`","url":"https://cal.example/e/1","code":200}`,
	)
	require.NoError(t, err)

	assert.Equal(t,
		"s\tgato-events(abcdefgh)\t\t200\n"+
			"other\tgato-events(abcdefgh)\t\t200\n",
		out)
	assert.Equal(t, 1, f.Stats().Suppressed)
}

func TestConsolidateDedupSpansInputs(t *testing.T) {
	f := NewFilter(ModeConsolidate, nil)
	line := `{"lvl":3,"src":"s","tag":"div#abcdefgh.column_paragraph/div.gato-rss-item","url":"u","code":200}`

	first, err := runFilter(t, f, line)
	require.NoError(t, err)
	second, err := runFilter(t, f, line)
	require.NoError(t, err)

	assert.Equal(t, "s\tgato-rss-item(abcdefgh)\t\t200\n", first)
	assert.Empty(t, second)
	assert.Equal(t, 2, f.Stats().Inputs)
}

func TestConsolidateNormalizesURLAndTag(t *testing.T) {
	out, err := runFilter(t, NewFilter(ModeConsolidate, nil),
		`{"lvl":3,"src":"s","tag":"html/img","url":"https://h.example/magnoliaAssets/cache1a2b3c/img.png","code":200}`,
		`{"lvl":3,"src":"s","tag":"html/a","url":"https://h.example/cache9z8y/imagehandler/foo","code":200}`,
		`{"lvl":3,"src":"s","tag":"a","url":"https://h.example/page","code":301}`,
	)
	require.NoError(t, err)

	assert.Equal(t,
		"s\timg\thttps://h.example/magnoliaAssets/cache.../img.png\t200\n"+
			"s\ta\thttps://h.example/cache.../imagehandler/foo\t200\n"+
			"s\ta\thttps://h.example/page\t301\n",
		out)
}

func TestConsolidateAppliesRules(t *testing.T) {
	rules, err := ParseRules(strings.NewReader("^http://\thttps://\n"))
	require.NoError(t, err)

	out, err := runFilter(t, NewFilter(ModeConsolidate, rules),
		`{"lvl":3,"src":"s","tag":"html/a","url":"http://h.example/magnoliaAssets/cacheab12/x.css","code":200}`,
	)
	require.NoError(t, err)
	assert.Equal(t, "s\ta\thttps://h.example/magnoliaAssets/cache.../x.css\t200\n", out)
}

func TestPlainModeIgnoresRules(t *testing.T) {
	rules, err := ParseRules(strings.NewReader("^http://\thttps://\n"))
	require.NoError(t, err)

	out, err := runFilter(t, NewFilter(ModePlain, rules), `{"src":"s","tag":"t","url":"http://h.example/","code":200}`)
	require.NoError(t, err)
	assert.Equal(t, "s\tt\thttp://h.example/\t200\n", out)
}

func TestFilterErrors(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		line    string
		wantErr error
		wantMsg string
	}{
		{"invalid json", ModePlain, `{"src":`, jsonl.ErrParse, "line 2: invalid JSON"},
		{"missing url", ModePlain, `{"src":"s","tag":"t","code":200}`, jsonl.ErrMissingField, `line 2: missing required field "url"`},
		{"missing lvl in consolidate", ModeConsolidate, `{"src":"s","tag":"t","url":"u","code":200}`, jsonl.ErrMissingField, `line 2: missing required field "lvl"`},
		{"missing code at info level", ModeConsolidate, `{"lvl":3,"src":"s","tag":"t","url":"u"}`, jsonl.ErrMissingField, `line 2: missing required field "code"`},
		{"code not integer", ModePlain, `{"src":"s","tag":"t","url":"u","code":"200"}`, jsonl.ErrFieldType, `line 2: unexpected field type: "code" must be an integer`},
		{"fractional code", ModePlain, `{"src":"s","tag":"t","url":"u","code":200.5}`, jsonl.ErrFieldType, `line 2: unexpected field type: "code" must be an integer`},
		{"src not string", ModePlain, `{"src":1,"tag":"t","url":"u","code":200}`, jsonl.ErrFieldType, `line 2: unexpected field type: "src" must be a string`},
		{"record not object", ModePlain, `["s","t","u",200]`, jsonl.ErrFieldType, `line 2: unexpected field type: "record" must be an object`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := `{"lvl":3,"src":"s","tag":"t","url":"u","code":200}`
			out, err := runFilter(t, NewFilter(tt.mode, nil), first, tt.line, first)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, "s\tt\tu\t200\n", out)
		})
	}
}

func TestRepeatedKeysKeepLastValue(t *testing.T) {
	out, err := runFilter(t, NewFilter(ModePlain, nil), `{"src":"a","tag":"t","url":"u","code":200,"src":"b"}`)
	require.NoError(t, err)
	assert.Equal(t, "b\tt\tu\t200\n", out)

	out, err = runFilter(t, NewFilter(ModeConsolidate, nil), `{"lvl":3,"src":"s","tag":"t","url":"u","code":200,"lvl":1}`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSkippedRecordsAreNotValidated(t *testing.T) {
	out, err := runFilter(t, NewFilter(ModeConsolidate, nil), `{"lvl":1,"msg":"crawler failure"}`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProcess(t *testing.T) {
	f := NewFilter(ModeConsolidate, nil)

	row, ok, err := f.Process(gjson.Parse(`{"lvl":3,"src":"s","tag":"x/div#A1b2C3d4E5.column_paragraph/div.gato-twitter-feed/ul/li/a","url":"https://t.example/1","code":200}`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "s\tgato-twitter-feed(A1b2C3d4E5)\t\t200", row)

	_, ok, err = f.Process(gjson.Parse(`{"lvl":3,"src":"s","tag":"y/div#A1b2C3d4E5.column_paragraph/div.gato-twitter-feed/ul/li/a","url":"https://t.example/2","code":200}`))
	require.NoError(t, err)
	assert.False(t, ok)
}
