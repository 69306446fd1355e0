package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets the style attribute from a property mapping.
func Style(styles Styles) Attr { return attr("style", styles) }

// StyleText sets the style attribute from raw declaration text.
func StyleText(text string) Attr { return attr("style", text) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// Link and media attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// TypeAttr sets the type attribute (named to avoid shadowing the builtin).
func TypeAttr(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked boolean attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Selected sets the selected boolean attribute.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Multiple sets the multiple boolean attribute.
func Multiple() Attr { return attr("multiple", true) }

// Required sets the required boolean attribute.
func Required() Attr { return attr("required", true) }

// ReadOnly sets the readonly boolean attribute.
func ReadOnly() Attr { return attr("readonly", true) }

// Misc attributes

// TitleAttr sets the title attribute (named to avoid shadowing the
// conventional Title element name).
func TitleAttr(title string) Attr { return attr("title", title) }

// Hidden sets the hidden boolean attribute.
func Hidden() Attr { return attr("hidden", true) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return attr("dir", dir) }
