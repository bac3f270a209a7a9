// Package sitemap parses sitemap XML and reports duplicate location
// entries. Location URLs are compared by exact text: trailing slashes,
// scheme case, and whitespace are all significant, because search
// engines treat such variants as distinct URLs too.
package sitemap
