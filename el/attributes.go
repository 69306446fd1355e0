// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/topiary-ui/topiary/pkg/vdom"

func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func Style(styles Styles) Attr {
	return vdom.Style(styles)
}
func StyleText(text string) Attr {
	return vdom.StyleText(text)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func AriaLabel(label string) Attr {
	return vdom.AriaLabel(label)
}
func AriaHidden(hidden bool) Attr {
	return vdom.AriaHidden(hidden)
}
func AriaExpanded(expanded bool) Attr {
	return vdom.AriaExpanded(expanded)
}
func AriaSelected(selected bool) Attr {
	return vdom.AriaSelected(selected)
}
func Href(href string) Attr {
	return vdom.Href(href)
}
func Target(target string) Attr {
	return vdom.Target(target)
}
func Src(src string) Attr {
	return vdom.Src(src)
}
func Alt(alt string) Attr {
	return vdom.Alt(alt)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Value(value string) Attr {
	return vdom.Value(value)
}
func TypeAttr(t string) Attr {
	return vdom.TypeAttr(t)
}
func Placeholder(text string) Attr {
	return vdom.Placeholder(text)
}
func For(id string) Attr {
	return vdom.For(id)
}
func Disabled(disabled bool) Attr {
	return vdom.Disabled(disabled)
}
func Checked(checked bool) Attr {
	return vdom.Checked(checked)
}
func Selected(selected bool) Attr {
	return vdom.Selected(selected)
}
func Multiple() Attr {
	return vdom.Multiple()
}
func Required() Attr {
	return vdom.Required()
}
func ReadOnly() Attr {
	return vdom.ReadOnly()
}
func TitleAttr(title string) Attr {
	return vdom.TitleAttr(title)
}
func Hidden() Attr {
	return vdom.Hidden()
}
func TabIndex(index int) Attr {
	return vdom.TabIndex(index)
}
func Lang(lang string) Attr {
	return vdom.Lang(lang)
}
func Dir(dir string) Attr {
	return vdom.Dir(dir)
}
