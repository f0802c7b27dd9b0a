// Package entries implements the codec between the canonical model and the
// "entries" JSON compatibility format: a single JSON object whose keys are
// message ids in declaration order and whose values are the text of each
// message.
//
// Both directions work on an insertion-ordered association
// (github.com/wk8/go-ordered-map/v2) so key order always equals entry order.
// Only patterns made of exactly one text run can be represented; any other
// shape is rejected with an *UnsupportedPatternShapeError instead of being
// truncated.
package entries
