package message

// Reaction aggregates one emoji's usage on a message. Count always equals
// len(Users), and a user id appears at most once.
type Reaction struct {
	Emoji string
	Count int
	Users []string
}

// HasUser reports whether the given user already reacted with this emoji.
func (r Reaction) HasUser(userID string) bool {
	for _, id := range r.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// AddReaction returns a copy of the message with the user's reaction applied.
// A reaction is created on first use of an emoji; re-reacting with the same
// emoji is a no-op, preserving the at-most-once-per-user invariant. Count and
// the user set are updated together.
func (m Message) AddReaction(emoji, userID string) Message {
	reactions := make([]Reaction, len(m.Reactions))
	copy(reactions, m.Reactions)

	for i, r := range reactions {
		if r.Emoji != emoji {
			continue
		}
		if r.HasUser(userID) {
			return m
		}
		users := make([]string, len(r.Users), len(r.Users)+1)
		copy(users, r.Users)
		users = append(users, userID)
		reactions[i] = Reaction{Emoji: emoji, Count: len(users), Users: users}
		m.Reactions = reactions
		return m
	}

	reactions = append(reactions, Reaction{Emoji: emoji, Count: 1, Users: []string{userID}})
	m.Reactions = reactions
	return m
}

// RemoveReaction returns a copy of the message with the user's reaction
// removed. A reaction whose user set becomes empty is dropped entirely.
// Removing a reaction the user never made is a no-op.
func (m Message) RemoveReaction(emoji, userID string) Message {
	reactions := make([]Reaction, 0, len(m.Reactions))
	changed := false

	for _, r := range m.Reactions {
		if r.Emoji != emoji || !r.HasUser(userID) {
			reactions = append(reactions, r)
			continue
		}
		changed = true
		users := make([]string, 0, len(r.Users)-1)
		for _, id := range r.Users {
			if id != userID {
				users = append(users, id)
			}
		}
		if len(users) > 0 {
			reactions = append(reactions, Reaction{Emoji: emoji, Count: len(users), Users: users})
		}
	}

	if !changed {
		return m
	}
	m.Reactions = reactions
	return m
}

// ReactionsConsistent reports whether every reaction satisfies the
// count == len(users) invariant with no duplicate user ids.
func (m Message) ReactionsConsistent() bool {
	for _, r := range m.Reactions {
		if r.Count != len(r.Users) {
			return false
		}
		seen := make(map[string]struct{}, len(r.Users))
		for _, id := range r.Users {
			if _, dup := seen[id]; dup {
				return false
			}
			seen[id] = struct{}{}
		}
	}
	return true
}
