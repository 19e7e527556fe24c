package models

// Label is a conversation label of the inbox platform.
type Label struct {
	ID            string
	Title         string
	Description   string
	Color         string
	ShowOnSidebar bool
}

// LabelFromResource reads a [Label] out of r.
func LabelFromResource(r Resource) Label {
	return Label{
		ID:            r.ID,
		Title:         r.Fields.String("title"),
		Description:   r.Fields.String("description"),
		Color:         r.Fields.String("color"),
		ShowOnSidebar: r.Fields.Bool("show_on_sidebar"),
	}
}

// Fields returns the label attributes in their wire form.
func (l Label) Fields() Fields {
	return Fields{
		"title":           l.Title,
		"description":     l.Description,
		"color":           l.Color,
		"show_on_sidebar": l.ShowOnSidebar,
	}
}
