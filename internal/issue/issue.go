// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidColorCodeId Id = iota + 1
	InvalidChannelId
	ConfigLoadFailedId
	InvalidOutputFormatId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // external references about the failure
}

func (i *Issue) Id() Id {
	return i.id
}

// Render renders the issue's Markdown with the named glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	catalog = []*Issue{
		{
			id: InvalidColorCodeId,
			mdMsg: `
# Invalid color code

A color code is a ` + "`#`" + ` followed by exactly **3** or **6** hexadecimal digits.

## Valid examples
- ` + "`#a0f`" + ` (expands to ` + "`#aa00ff`" + `)
- ` + "`#19021e`" + `
- ` + "`#FFC0CB`" + `

## Things you can try
- Add the leading ` + "`#`" + ` (quote it in your shell: ` + "`'#19021e'`" + `)
- Check for stray characters: only ` + "`0-9`" + ` and ` + "`a-f`" + ` are allowed
- Check the digit count: 4, 5 and 7+ digits are rejected`,
			docLinks: []HttpLink{"https://developer.mozilla.org/en-US/docs/Web/CSS/hex-color"},
		},
		{
			id: InvalidChannelId,
			mdMsg: `
# Invalid RGB channel

Each of red, green and blue must be an integer between **0** and **255**.

## Things you can try
~~~
$ huewheel hex 25 2 30
~~~`,
		},
		{
			id: ConfigLoadFailedId,
			mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Things you can try
- Print the resolved path:
~~~
$ huewheel config path
~~~
- Recreate a default file:
~~~
$ huewheel config init
~~~
- Supported keys: ` + "`output`" + `, ` + "`ui.color_scheme`" + `, ` + "`ui.verbose`" + `, ` + "`ui.swatch`",
			docLinks: []HttpLink{"https://cuelang.org/docs/"},
		},
		{
			id: InvalidOutputFormatId,
			mdMsg: `
# Unknown output format

The ` + "`--output`" + ` flag and the ` + "`output`" + ` config key accept ` + "`text`" + `, ` + "`json`" + ` or ` + "`toml`" + `.`,
		},
	}
)

// Get returns the issue with the given ID, or nil.
func Get(id Id) *Issue {
	idx := slices.IndexFunc(catalog, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil
	}
	return catalog[idx]
}
