package form

// Attachment is an optional binary upload bound to a file field. A zero
// length Content is semantically "no file".
type Attachment struct {
	Filename string
	Content  []byte
}

// Empty reports whether the attachment carries no bytes.
func (a Attachment) Empty() bool {
	return len(a.Content) == 0
}

// DateValue pairs a date with its "no date" override. When NoDate is set the
// Date must be treated as intentionally absent rather than not-yet-filled.
type DateValue struct {
	Date   string
	NoDate bool
}

// State holds the raw field values of one detail form as a flat mapping of
// namespaced keys. It is owned by a single session and accessed from one
// logical flow; there is no locking.
type State struct {
	values      map[string]string
	attachments map[string]Attachment
}

// NewState returns an empty form state.
func NewState() *State {
	return &State{
		values:      make(map[string]string),
		attachments: make(map[string]Attachment),
	}
}

// Set writes a raw string value.
func (s *State) Set(key, value string) {
	if s == nil || key == "" {
		return
	}
	s.values[key] = value
}

// Value reads a raw string value.
func (s *State) Value(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[key]
	return value, ok
}

// SetDate writes a date value together with its override flag. Setting the
// override discards the date itself; there is no hidden retention.
func (s *State) SetDate(key string, value DateValue) {
	if s == nil || key == "" {
		return
	}
	if value.NoDate {
		delete(s.values, key)
		s.values[key+noDateSuffix] = "si"
		return
	}
	delete(s.values, key+noDateSuffix)
	s.values[key] = value.Date
}

// Date reads a date value and its override flag.
func (s *State) Date(key string) DateValue {
	if s == nil {
		return DateValue{}
	}
	if _, ok := s.values[key+noDateSuffix]; ok {
		return DateValue{NoDate: true}
	}
	return DateValue{Date: s.values[key]}
}

// NoDate reports whether the override flag is set for a date key.
func (s *State) NoDate(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key+noDateSuffix]
	return ok
}

// SetAttachment binds a file to an attachment field.
func (s *State) SetAttachment(key string, attachment Attachment) {
	if s == nil || key == "" {
		return
	}
	s.attachments[key] = attachment
}

// Attachment reads the file bound to an attachment field.
func (s *State) Attachment(key string) (Attachment, bool) {
	if s == nil {
		return Attachment{}, false
	}
	attachment, ok := s.attachments[key]
	return attachment, ok
}

// Discard removes the listed keys from the state entirely, including any
// attachment bytes and date override flags under those keys.
func (s *State) Discard(keys ...string) {
	if s == nil {
		return
	}
	for _, key := range keys {
		delete(s.values, key)
		delete(s.values, key+noDateSuffix)
		delete(s.attachments, key)
	}
}

// Snapshot returns a deep copy. The submission pipeline captures one at
// submit intent so later edits do not affect an in-flight attempt.
func (s *State) Snapshot() *State {
	if s == nil {
		return NewState()
	}
	clone := &State{
		values:      make(map[string]string, len(s.values)),
		attachments: make(map[string]Attachment, len(s.attachments)),
	}
	for key, value := range s.values {
		clone.values[key] = value
	}
	for key, attachment := range s.attachments {
		content := append([]byte(nil), attachment.Content...)
		clone.attachments[key] = Attachment{Filename: attachment.Filename, Content: content}
	}
	return clone
}

// Values returns a copy of the raw string values.
func (s *State) Values() map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}
