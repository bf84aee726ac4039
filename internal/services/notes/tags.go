package notes

import "strings"

// TagSeparator is the delimiter of the flat tag encoding. Tag values may
// not contain it; request validation rejects them before encoding.
const TagSeparator = ","

// EncodeTags converts a tag list into its stored column form. A nil list
// means "no tags set" and encodes to NULL; any non-nil list, the empty
// list included, encodes to the comma-joined string (the empty list joins
// to ""). Order is preserved and no escaping is applied.
func EncodeTags(tags []string) *string {
	if tags == nil {
		return nil
	}
	joined := strings.Join(tags, TagSeparator)
	return &joined
}

// DecodeTags converts the stored column form back into a tag list. NULL
// and "" both decode to nil. Otherwise the string is split on the
// separator, segments are trimmed, and segments that trim to "" are
// dropped - so a string of pure separators decodes to an empty non-nil
// list, which is deliberately not the same as nil.
func DecodeTags(stored *string) []string {
	if stored == nil || *stored == "" {
		return nil
	}
	segments := strings.Split(*stored, TagSeparator)
	tags := make([]string, 0, len(segments))
	for _, seg := range segments {
		if tag := strings.TrimSpace(seg); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
