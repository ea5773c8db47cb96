package ux

import "github.com/zeebo/errs"

// Error is the class of every error returned, and every value panicked, by
// this package. Test for it with Error.Has(err).
var Error = errs.Class("ux")
