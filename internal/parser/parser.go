package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"jsonlens/internal/errors"
	"jsonlens/internal/models"
)

// Parse reads a single JSON document from reader into a models.Value.
// Decoding walks the token stream rather than unmarshalling into maps so
// that object member order survives; numbers are kept as raw literals
// via UseNumber.
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.Value{}, errors.NewParsingError("failed to decode JSON", errors.ErrInvalidJSON)
	}

	root, err := decodeValue(decoder, tok)
	if err != nil {
		return models.Value{}, err
	}

	// Anything but whitespace after the first document is malformed.
	if _, err := decoder.Token(); !stderrors.Is(err, io.EOF) {
		return models.Value{}, errors.NewParsingError("trailing data after first JSON value", errors.ErrInvalidJSON)
	}

	return root, nil
}

// decodeValue turns the already-read token tok (and, for containers, the
// tokens that follow it) into a Value.
func decodeValue(decoder *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return models.Value{}, errors.NewParsingError("unexpected delimiter", errors.ErrInvalidJSON)
		}
	case string:
		return models.StringValue(t), nil
	case json.Number:
		return models.NumberValue(t), nil
	case bool:
		return models.BoolValue(t), nil
	case nil:
		return models.NullValue(), nil
	default:
		return models.Value{}, errors.NewParsingError("unexpected token", errors.ErrInvalidJSON)
	}
}

func decodeObject(decoder *json.Decoder) (models.Value, error) {
	var members []models.Member
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, errors.NewParsingError("unterminated object", errors.ErrInvalidJSON)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return models.ObjectValue(members), nil
		}
		key, ok := tok.(string)
		if !ok {
			return models.Value{}, errors.NewParsingError("object key is not a string", errors.ErrInvalidJSON)
		}

		tok, err = decoder.Token()
		if err != nil {
			return models.Value{}, errors.NewParsingError("object key has no value", errors.ErrInvalidJSON)
		}
		val, err := decodeValue(decoder, tok)
		if err != nil {
			return models.Value{}, err
		}

		// Duplicate keys keep the last occurrence, matching JSON.parse
		// semantics, so member keys stay unique.
		replaced := false
		for i := range members {
			if members[i].Key == key {
				members[i].Value = val
				replaced = true
				break
			}
		}
		if !replaced {
			members = append(members, models.Member{Key: key, Value: val})
		}
	}
}

func decodeArray(decoder *json.Decoder) (models.Value, error) {
	var items []models.Value
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, errors.NewParsingError("unterminated array", errors.ErrInvalidJSON)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return models.ArrayValue(items), nil
		}
		val, err := decodeValue(decoder, tok)
		if err != nil {
			return models.Value{}, err
		}
		items = append(items, val)
	}
}

// ParseString parses JSON from a string. Empty or whitespace-only input
// is reported as an input error, distinct from malformed JSON: callers
// treat it as "no input yet" rather than a parse failure.
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
