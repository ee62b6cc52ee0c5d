package backpack

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

//
// BuildQuerySignee renders the instruction followed by the query parameters in ascending byte-wise
// key order.
//
func BuildQuerySignee(instruction string, query map[string]string) string {
	var sb strings.Builder

	sb.WriteString("instruction=")
	sb.WriteString(instruction)

	for _, k := range sortedKeys(query) {
		sb.WriteByte('&')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(query[k])
	}

	return sb.String()
}

//
// BuildQueryAndBodySignee extends the query signee with the flattened fields of a JSON body. An
// object contributes its fields in ascending key order. An array contributes one complete signee
// per element, joined with "&" in array order. Any other body is rejected.
//
func BuildQueryAndBodySignee(instruction string, query map[string]string, body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", &InvalidRequestError{Reason: "payload is not valid JSON"}
	}

	return buildBodySignee(instruction, query, gjson.ParseBytes(body))
}

func buildBodySignee(instruction string, query map[string]string, body gjson.Result) (string, error) {
	switch {
	case body.IsObject():
		fields := make(map[string]string)

		body.ForEach(func(k, v gjson.Result) bool {
			fields[k.String()] = flattenValue(v)
			return true
		})

		var sb strings.Builder

		sb.WriteString(BuildQuerySignee(instruction, query))

		for _, k := range sortedKeys(fields) {
			sb.WriteByte('&')
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(fields[k])
		}

		return sb.String(), nil

	case body.IsArray():
		elements := body.Array()
		if len(elements) == 0 {
			return "", &InvalidRequestError{Reason: "payload array must not be empty"}
		}

		parts := make([]string, 0, len(elements))

		for _, element := range elements {
			part, err := buildBodySignee(instruction, query, element)
			if err != nil {
				return "", err
			}

			parts = append(parts, part)
		}

		return strings.Join(parts, "&"), nil

	default:
		return "", &InvalidRequestError{Reason: "payload must be a JSON object"}
	}
}

//
// flattenValue renders a single body value the way the exchange expects it in the signee: strings
// lose their surrounding quotes, objects and arrays become compact JSON with object keys sorted at
// every depth, and everything else is its JSON text.
//
func flattenValue(v gjson.Result) string {
	if v.IsObject() || v.IsArray() {
		var sb strings.Builder
		writeCanonical(&sb, v)

		return sb.String()
	}

	return strings.Trim(v.Raw, `"`)
}

//
// writeCanonical writes v as compact JSON. Object keys are sorted byte-wise and a repeated key keeps
// its last value. Scalars keep their wire text.
//
func writeCanonical(sb *strings.Builder, v gjson.Result) {
	switch {
	case v.IsObject():
		keys := make(map[string]string)
		values := make(map[string]gjson.Result)

		v.ForEach(func(k, member gjson.Result) bool {
			keys[k.String()] = k.Raw
			values[k.String()] = member
			return true
		})

		sb.WriteByte('{')

		for i, k := range sortedKeys(keys) {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(keys[k])
			sb.WriteByte(':')
			writeCanonical(sb, values[k])
		}

		sb.WriteByte('}')

	case v.IsArray():
		sb.WriteByte('[')

		for i, element := range v.Array() {
			if i > 0 {
				sb.WriteByte(',')
			}

			writeCanonical(sb, element)
		}

		sb.WriteByte(']')

	default:
		sb.WriteString(v.Raw)
	}
}

//
// AppendValidity terminates a signee with its timestamp and validity window.
//
func AppendValidity(signee string, timestamp int64, window int64) string {
	return signee + "&timestamp=" + strconv.FormatInt(timestamp, 10) + "&window=" + strconv.FormatInt(window, 10)
}

//
// Signee composes the complete string to be signed for a request. A nil or empty body produces the
// query-only form.
//
func Signee(instruction string, query map[string]string, body []byte, timestamp int64, window int64) (string, error) {
	signee := BuildQuerySignee(instruction, query)

	if len(bytes.TrimSpace(body)) > 0 {
		var err error

		signee, err = BuildQueryAndBodySignee(instruction, query, body)
		if err != nil {
			return "", err
		}
	}

	return AppendValidity(signee, timestamp, window), nil
}

//
// SubscriptionSignee is the fixed message signed to authorize private websocket streams.
//
func SubscriptionSignee(timestamp int64, window int64) string {
	return AppendValidity("instruction=subscribe", timestamp, window)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
