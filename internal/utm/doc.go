// Package utm builds campaign-tagged URLs from a base URL and a set of
// UTM parameters. Empty parameters are skipped, existing query keys are
// overwritten rather than duplicated, and the result is re-serialized
// with the query in canonical (sorted key) order.
package utm
