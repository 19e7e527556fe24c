package models

// Instance connection statuses reported by the provisioning service.
const (
	InstanceOpen       = "open"
	InstanceClose      = "close"
	InstanceConnecting = "connecting"
)

// InstanceActionLogout disconnects an instance without deleting it.
const InstanceActionLogout = "logout"

// Instance is a messaging connection managed by the provisioning service.
// Its name doubles as its identifier.
type Instance struct {
	Name        string
	Status      string
	Owner       string
	ProfileName string
	Integration string
}

// InstanceFromResource reads an [Instance] out of r.
func InstanceFromResource(r Resource) Instance {
	return Instance{
		Name:        r.ID,
		Status:      r.Fields.String("connectionStatus"),
		Owner:       r.Fields.String("ownerJid"),
		ProfileName: r.Fields.String("profileName"),
		Integration: r.Fields.String("integration"),
	}
}

// Fields returns the instance attributes accepted by the create endpoint.
func (i Instance) Fields() Fields {
	fields := Fields{"instanceName": i.Name}
	if i.Integration != "" {
		fields["integration"] = i.Integration
	}
	return fields
}
