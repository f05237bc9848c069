// Package site generates a static site from a source content tree.
//
// Generation runs in two passes. The traversal pass walks the source tree
// with an explicit LIFO work-list, recreates every directory under the
// destination, renders Markdown documents into pages and copies every other
// file unchanged. Documents found below a directory named like the posts
// marker are recorded along the way. The aggregation pass runs once the
// work-list is empty and writes a single index page summarizing them.
//
// The traversal follows symbolic links and performs no cycle detection: a
// source tree containing a link cycle will not terminate.
package site
