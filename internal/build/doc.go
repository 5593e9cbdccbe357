// Package build sequences a generation run: discover the model snapshot once,
// plan every output document from it, then write (or compare) them.
//
// Planning performs all reads; nothing is written until every document has
// been planned, so a fatal input error never leaves a partial document.
package build
