package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRequest struct {
	Kind    string   `validate:"required,dataset_kind"`
	Format  string   `validate:"required,export_format"`
	Regions []string `validate:"omitempty,dive,region"`
	Limit   int      `validate:"min=0,max=30"`
}

func TestValidate_CustomRules(t *testing.T) {
	valid := exportRequest{Kind: "states", Format: "xlsx", Regions: []string{"south", "Northeast"}, Limit: 5}
	require.NoError(t, Validate(valid))

	err := Validate(exportRequest{Kind: "planets", Format: "pdf", Regions: []string{"Atlantis"}, Limit: 50})
	require.Error(t, err)

	details := Details(err)
	assert.Equal(t, "dataset_kind", details["kind"])
	assert.Equal(t, "export_format", details["format"])
	assert.Equal(t, "region", details["regions[0]"])
	assert.Equal(t, "max=30", details["limit"])
}

func TestDetails_PlainError(t *testing.T) {
	details := Details(errors.New("boom"))
	assert.Equal(t, "boom", details["error"])
}
