// Package articles discovers dated, tagged Markdown articles and exposes the
// metadata the site generator needs: publication date, tags, title, image
// references and code languages.
//
// Article files are named <published>_<name>.md where the name may carry
// #tags, for example 2021-03-04_Intro#go#web.md.
package articles
