// Package pipeline provides a framework for executing audit checks in
// sequence.
//
// The pipeline pattern is used to run a page and its supporting
// documents (robots.txt, sitemap, response headers, JSON-LD, images)
// through multiple checks. Each check is implemented as a Step that
// receives the accumulated report and can add findings to it.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of checks without modifying core logic
// 2. It provides consistent error handling and logging across checks
// 3. It supports cancellation via context
//
// The pipeline supports both individual audits and batch processing of
// multiple pages with concurrency control using errgroup.
package pipeline
