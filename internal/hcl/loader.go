package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/clampsum/internal/config"
	"github.com/specialistvlad/clampsum/internal/ctxlog"
	"github.com/specialistvlad/clampsum/internal/validation"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL parameter loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a parameter file. Both attributes are required
// and no other attributes or blocks are allowed.
type fileRoot struct {
	Threshold hcl.Expression `hcl:"threshold,attr"`
	Limit     hcl.Expression `hcl:"limit,attr"`
}

// Load parses the file at path and returns the decimal text of the threshold
// and the limit.
func (l *Loader) Load(ctx context.Context, path string) (*config.Params, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading parameter file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &validation.Error{Kind: validation.Config, Subject: path, Err: diags}
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, &validation.Error{Kind: validation.Config, Subject: path, Err: diags}
	}

	threshold, diags := decimalText(root.Threshold, "threshold")
	if diags.HasErrors() {
		return nil, &validation.Error{Kind: validation.Config, Subject: path, Err: diags}
	}
	limit, diags := decimalText(root.Limit, "limit")
	if diags.HasErrors() {
		return nil, &validation.Error{Kind: validation.Config, Subject: path, Err: diags}
	}

	logger.Debug("Parameter file loaded.", "threshold", threshold, "limit", limit)
	return &config.Params{Threshold: threshold, Limit: limit}, nil
}

// decimalText evaluates a constant expression and renders it as a string.
// Numbers come out in plain positional notation, e.g. 2.50 becomes "2.5".
func decimalText(expr hcl.Expression, attrName string) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing value",
			Detail:   fmt.Sprintf("The %q attribute must be set to a number or a string.", attrName),
			Subject:  expr.Range().Ptr(),
		}}
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsuitable value type",
			Detail:   fmt.Sprintf("The %q attribute must be a number or a string: %s.", attrName, err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return str.AsString(), nil
}
