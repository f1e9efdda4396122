// Package generator assembles the static site: one page per article, the
// tag index, the stylesheet bundle, copied assets and the optional feed and
// sitemap. Output is staged next to the target directory and swapped in
// once every file has been written.
package generator
