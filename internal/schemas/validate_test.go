package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeData_Valid(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{
			"name":  "Jane Smith",
			"email": "jane@example.com",
		},
		"target_job_role": "Backend Engineer",
		"skills": []any{
			map[string]any{"category": "Languages", "items": []any{"Go", "Python"}},
		},
		"education": []any{
			map[string]any{"degree": "B.S.", "institution": "State University", "year": "2023"},
		},
	}

	assert.NoError(t, ValidateResumeData(data))
}

func TestValidateResumeData_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateResumeData(map[string]any{}))
}

func TestValidateResumeData_WrongSectionShape(t *testing.T) {
	data := map[string]any{
		"skills": "Go, Python",
	}

	err := ValidateResumeData(data)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateResumeData_WrongFieldType(t *testing.T) {
	data := map[string]any{
		"education": []any{
			map[string]any{"degree": 42},
		},
	}

	err := ValidateResumeData(data)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "degree")
}

func TestValidateResumeJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name: "valid document",
			json: `{"personal_info": {"name": "Sam"}, "skills": []}`,
		},
		{
			name:    "wrong root type",
			json:    `["not", "an", "object"]`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			json:    `{not json}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeJSON(tt.json)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
