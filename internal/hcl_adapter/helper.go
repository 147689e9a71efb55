package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/amazingnumbers/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. gohcl populates omitted optional hcl.Expression fields with zero-width
// placeholder expressions, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// decodeAttr evaluates expr, checks it has type want and stores the decoded
// Go value in *target. An attribute missing from the file leaves *target
// untouched.
func decodeAttr[T any](ctx context.Context, expr hcl.Expression, attrName string, want cty.Type, target **T) error {
	if !isExprDefined(ctx, expr, attrName) {
		return nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("attribute '%s': %w", attrName, diags)
	}
	if val.IsNull() {
		return fmt.Errorf("attribute '%s' at %s: value must not be null", attrName, expr.Range())
	}
	if !val.Type().Equals(want) {
		return fmt.Errorf("attribute '%s' at %s: expected %s, got %s",
			attrName, expr.Range(), want.FriendlyName(), val.Type().FriendlyName())
	}

	out := new(T)
	if err := gocty.FromCtyValue(val, out); err != nil {
		return fmt.Errorf("attribute '%s' at %s: %w", attrName, expr.Range(), err)
	}
	*target = out
	return nil
}
