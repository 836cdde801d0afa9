package message

// SystemEvent identifies the sub-kind of a system message.
type SystemEvent string

const (
	SystemUserJoined     SystemEvent = "user_joined"
	SystemUserLeft       SystemEvent = "user_left"
	SystemGroupCreated   SystemEvent = "group_created"
	SystemGroupUpdated   SystemEvent = "group_updated"
	SystemMessageDeleted SystemEvent = "message_deleted"
	SystemCustom         SystemEvent = "custom"
)

// SystemData is the payload carried by messages of KindSystem.
type SystemData struct {
	Event SystemEvent
	Actor *User
	Data  map[string]any
}

// Describe produces the display line for a system event. Unknown events fall
// back to the message text.
func (d SystemData) Describe(fallback string) string {
	name := ""
	if d.Actor != nil {
		name = d.Actor.Name
		if name == "" {
			name = d.Actor.ID
		}
	}

	switch d.Event {
	case SystemUserJoined:
		return name + " joined the chat"
	case SystemUserLeft:
		return name + " left the chat"
	case SystemGroupCreated:
		return name + " created the group"
	case SystemGroupUpdated:
		return name + " updated the group"
	case SystemMessageDeleted:
		return "A message was deleted"
	default:
		return fallback
	}
}
