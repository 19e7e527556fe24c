package models

// Inbox is a channel of the inbox platform (website widget, API, WhatsApp...).
type Inbox struct {
	ID              string
	Name            string
	ChannelType     string
	GreetingEnabled bool
	GreetingMessage string
}

// InboxFromResource reads an [Inbox] out of r.
func InboxFromResource(r Resource) Inbox {
	return Inbox{
		ID:              r.ID,
		Name:            r.Fields.String("name"),
		ChannelType:     r.Fields.String("channel_type"),
		GreetingEnabled: r.Fields.Bool("greeting_enabled"),
		GreetingMessage: r.Fields.String("greeting_message"),
	}
}

// Fields returns the inbox attributes in their wire form.
func (i Inbox) Fields() Fields {
	return Fields{
		"name":             i.Name,
		"channel_type":     i.ChannelType,
		"greeting_enabled": i.GreetingEnabled,
		"greeting_message": i.GreetingMessage,
	}
}
