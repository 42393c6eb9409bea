package conversation

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportJSON writes the transcript as a JSON array of {role, content}
// objects, the same shape the provider consumes.
func (c *Conversation) ExportJSON(w io.Writer) error {
	entries := c.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ImportJSON replaces the transcript with the decoded entries. Entries with
// unknown roles are rejected and the transcript is left untouched.
func (c *Conversation) ImportJSON(r io.Reader) error {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("failed to decode transcript: %w", err)
	}
	for i, entry := range entries {
		if entry.Role != RoleUser && entry.Role != RoleAssistant {
			return fmt.Errorf("entry %d has unknown role %q", i, entry.Role)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	return nil
}
