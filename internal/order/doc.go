// Package order resolves an order id against the planning table and
// joins it with its technology sequence into an OrderContext.
//
// Lookup is exact after normalization (trim + uppercase). There is no
// fuzzy or substring matching: an ambiguous partial match could
// generate a route card for the wrong order, which is worse than a
// clean ORDER_NOT_FOUND. Likewise the resolver never substitutes a
// default product code - a planning row whose product has no
// technology steps fails with PRODUCT_CODE_MISSING so the operator can
// fix the upstream data.
package order
