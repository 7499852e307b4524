package validate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizops/pkg/apperr"
)

type taxBody struct {
	Name    string `json:"tax_name" binding:"required,notblank"`
	Percent Number `json:"tax_percentage" binding:"present,percent"`
	Kind    string `json:"kind" binding:"omitempty,oneof=A B"`
	Active  *bool  `json:"active"`
}

func bindBody(t *testing.T, raw string) (taxBody, error) {
	t.Helper()
	Setup()
	var body taxBody
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return body, err
	}
	return body, binding.Validator.ValidateStruct(&body)
}

func TestNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  float64
	}{
		{`12.5`, true, 12.5},
		{`"55.5"`, true, 55.5},
		{`" 7 "`, true, 7},
		{`0`, true, 0},
		{`"abc"`, false, 0},
		{`""`, false, 0},
		{`null`, false, 0},
		{`"NaN"`, false, 0},
	}
	for _, tt := range tests {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(tt.in), &n), tt.in)
		assert.Equal(t, tt.valid, n.Valid(), tt.in)
		assert.Equal(t, tt.want, n.Float64(), tt.in)
	}
}

func TestNumber_Marshal(t *testing.T) {
	b, err := json.Marshal(NewNumber(8.25))
	require.NoError(t, err)
	assert.Equal(t, "8.25", string(b))

	b, err = json.Marshal(Number{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestSetup_CustomRules(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ok", `{"tax_name":"VAT","tax_percentage":"20"}`, ""},
		{"zero percent", `{"tax_name":"VAT","tax_percentage":0}`, ""},
		{"upper bound", `{"tax_name":"VAT","tax_percentage":100}`, ""},
		{"blank name", `{"tax_name":" ","tax_percentage":1}`, "tax_name is required"},
		{"missing percent", `{"tax_name":"VAT"}`, "tax_percentage is required"},
		{"null percent", `{"tax_name":"VAT","tax_percentage":null}`, "tax_percentage is required"},
		{"negative", `{"tax_name":"VAT","tax_percentage":-1}`, "tax_percentage must be a number between 0 and 100"},
		{"over", `{"tax_name":"VAT","tax_percentage":"100.01"}`, "tax_percentage must be a number between 0 and 100"},
		{"text", `{"tax_name":"VAT","tax_percentage":"ten"}`, "tax_percentage must be a number between 0 and 100"},
		{"enum", `{"tax_name":"VAT","tax_percentage":1,"kind":"C"}`, "kind must be one of: A, B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindBody(t, tt.raw)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := Translate(err)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
			assert.Equal(t, tt.want, appErr.StatusMessage)
		})
	}
}

func TestTranslate_DecodeErrors(t *testing.T) {
	_, err := bindBody(t, `{"tax_name":"VAT","active":"yes"}`)
	assert.Equal(t, "active must be a boolean", Translate(err).StatusMessage)

	_, err = bindBody(t, `{"tax_name":`)
	assert.Equal(t, "invalid request body", Translate(err).StatusMessage)

	assert.Equal(t, "invalid request body", Translate(errors.New("boom")).StatusMessage)
	assert.Nil(t, Translate(nil))
}

type scopeFilter struct {
	Corporation string `form:"corporation_uuid"`
	IsActive    *bool  `form:"is_active"`
}

type listFilter struct {
	scopeFilter
	Limit int `form:"limit"`
}

func bindQuery(t *testing.T, rawQuery string) *apperr.AppError {
	t.Helper()
	Setup()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?"+rawQuery, nil)

	var q listFilter
	return TranslateQuery(c.ShouldBindQuery(&q), &q, c.Request.URL.Query())
}

func TestTranslateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"ok", "corporation_uuid=c1&is_active=true&limit=5", ""},
		{"bad bool", "corporation_uuid=c1&is_active=abc", "is_active must be a boolean"},
		{"bad int", "limit=ten", "limit must be an integer"},
		{"text field never blamed", "corporation_uuid=abc&is_active=abc", "is_active must be a boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := bindQuery(t, tt.query)
			if tt.want == "" {
				assert.Nil(t, appErr)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
			assert.Equal(t, tt.want, appErr.StatusMessage)
		})
	}

	assert.Nil(t, TranslateQuery(nil, &listFilter{}, nil))
	unknown := &strconv.NumError{Func: "ParseBool", Num: "zzz", Err: strconv.ErrSyntax}
	assert.Equal(t, "invalid query parameter", TranslateQuery(unknown, &listFilter{}, nil).StatusMessage)
}
