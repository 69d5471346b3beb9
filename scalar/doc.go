// Package scalar provides the numeric and geometric primitives that the
// rest of svlis is built from: reals, intervals, 3-D points, lines, planes
// and axis-aligned boxes.
//
// Nothing in this package knows about the expression DAG, sets or models;
// it is the leaf layer every other package imports.
package scalar
