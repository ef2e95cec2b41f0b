package parser

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"testing"

	"jsonlens/internal/errors"
	"jsonlens/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false, "city": null}`
	reader := strings.NewReader(jsonStr)
	root, err := Parse(reader)

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expected := models.ObjectValue([]models.Member{
		{Key: "name", Value: models.StringValue("John Doe")},
		{Key: "age", Value: models.NumberValue(json.Number("30"))},
		{Key: "isStudent", Value: models.BoolValue(false)},
		{Key: "city", Value: models.NullValue()},
	})

	if !reflect.DeepEqual(root, expected) {
		t.Errorf("Parse() root = %#v, want %#v", root, expected)
	}
}

func TestParse_MemberOrderPreserved(t *testing.T) {
	jsonStr := `{"z": 1, "a": 2, "m": 3}`
	root, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	wantKeys := []string{"z", "a", "m"}
	if gotKeys := root.Keys(); !reflect.DeepEqual(gotKeys, wantKeys) {
		t.Errorf("ParseString() keys = %v, want %v (insertion order)", gotKeys, wantKeys)
	}
}

func TestParse_DuplicateKeysKeepLast(t *testing.T) {
	root, err := ParseString(`{"a": 1, "a": 2}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if len(root.Members) != 1 {
		t.Fatalf("ParseString() members = %d, want 1", len(root.Members))
	}
	if got := string(root.Members[0].Value.Number); got != "2" {
		t.Errorf("ParseString() duplicate key value = %s, want 2 (last occurrence wins)", got)
	}
}

func TestParse_SimpleArray(t *testing.T) {
	jsonStr := `[1, "test", true, null, 3.14]`
	root, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	expected := models.ArrayValue([]models.Value{
		models.NumberValue(json.Number("1")),
		models.StringValue("test"),
		models.BoolValue(true),
		models.NullValue(),
		models.NumberValue(json.Number("3.14")),
	})

	if !reflect.DeepEqual(root, expected) {
		t.Errorf("ParseString() root = %#v, want %#v", root, expected)
	}
}

func TestParse_NestedObject(t *testing.T) {
	jsonStr := `{"user": {"name": "Jane Doe", "id": 123}, "active": true, "tags": ["go", "json"]}`
	root, err := ParseString(jsonStr)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	expected := models.ObjectValue([]models.Member{
		{Key: "user", Value: models.ObjectValue([]models.Member{
			{Key: "name", Value: models.StringValue("Jane Doe")},
			{Key: "id", Value: models.NumberValue(json.Number("123"))},
		})},
		{Key: "active", Value: models.BoolValue(true)},
		{Key: "tags", Value: models.ArrayValue([]models.Value{
			models.StringValue("go"),
			models.StringValue("json"),
		})},
	})

	if !reflect.DeepEqual(root, expected) {
		t.Errorf("ParseString() root = %#v, want %#v", root, expected)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	reader := strings.NewReader("")
	_, err := Parse(reader)
	if err == nil {
		t.Errorf("Parse() with empty reader, err = nil, want error")
	} else if !strings.Contains(err.Error(), "input is empty") {
		t.Errorf("Parse() with empty reader, err = %v, want error containing 'input is empty'", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
			continue
		}
		if !strings.Contains(err.Error(), "input string is empty or consists only of whitespace") {
			t.Errorf("ParseString(%q) err = %v, want empty-input error", input, err)
		}
		if errors.IsParseFailure(err) {
			t.Errorf("ParseString(%q) reported a parse failure, want plain empty-input error", input)
		}
	}
}

func TestParseString_MalformedJSON(t *testing.T) {
	cases := []string{
		`{"name": "John Doe", "age": 30`, // missing closing brace
		`["item1", "item2",`,             // missing closing bracket
		`{invalid}`,
		`{"a": 1,}`,
		`tru`,
		`"unterminated`,
	}
	for _, input := range cases {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
			continue
		}
		if !errors.IsParseFailure(err) {
			t.Errorf("ParseString(%q) err = %v, want a parse failure", input, err)
		}
	}
}

func TestParseString_TrailingData(t *testing.T) {
	_, err := ParseString(`{"a": 1} {"b": 2}`)
	if err == nil {
		t.Fatalf("ParseString() with two documents, err = nil, want error")
	}
	if !errors.IsParseFailure(err) {
		t.Errorf("ParseString() with two documents, err = %v, want a parse failure", err)
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	content := `{"product": "Laptop", "price": 1200.50}`
	tmpfile, err := os.CreateTemp("", "test_simple_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	root, err := ParseFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}

	expected := models.ObjectValue([]models.Member{
		{Key: "product", Value: models.StringValue("Laptop")},
		{Key: "price", Value: models.NumberValue(json.Number("1200.50"))},
	})

	if !reflect.DeepEqual(root, expected) {
		t.Errorf("ParseFile() root = %#v, want %#v", root, expected)
	}
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile("nonexistentfile.json")
	if err == nil {
		t.Errorf("ParseFile() with non-existent file, err = nil, want error")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("ParseFile() with non-existent file, err = %v, want error containing 'not found'", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	if err == nil {
		t.Errorf("ParseFile() with empty path, err = nil, want error")
	} else if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("ParseFile() with empty path, err = %v, want error containing 'file path is empty'", err)
	}
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_empty_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	// File is created, but nothing is written to it, so it's empty.
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	_, err = ParseFile(tmpfile.Name())
	if err == nil {
		t.Errorf("ParseFile() with empty file content, err = nil, want error")
	} else if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("ParseFile() with empty file content, err = %v, want error containing 'is empty'", err)
	}
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name        string
		jsonStr     string
		expectedVal models.Value
	}{
		{"RootString", `"hello world"`, models.StringValue("hello world")},
		{"RootNumber", `123.45`, models.NumberValue(json.Number("123.45"))},
		{"RootBooleanTrue", `true`, models.BoolValue(true)},
		{"RootBooleanFalse", `false`, models.BoolValue(false)},
		{"RootNull", `null`, models.NullValue()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := ParseString(tc.jsonStr)
			if err != nil {
				t.Fatalf("ParseString() error = %v, wantErr nil for %s", err, tc.name)
			}
			if !reflect.DeepEqual(root, tc.expectedVal) {
				t.Errorf("ParseString() root = %#v, want %#v for %s", root, tc.expectedVal, tc.name)
			}
		})
	}
}

func TestParse_EscapesAndExponents(t *testing.T) {
	root, err := ParseString(`{"text": "line\nbreak \"quoted\"", "big": 1.5e10, "neg": -0.25}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}

	text, ok := root.Field("text")
	if !ok || text.Str != "line\nbreak \"quoted\"" {
		t.Errorf("ParseString() text = %#v, want decoded escapes", text)
	}
	big, _ := root.Field("big")
	if big.Float() != 1.5e10 {
		t.Errorf("ParseString() big = %v, want 1.5e10", big.Float())
	}
	neg, _ := root.Field("neg")
	if neg.Float() != -0.25 {
		t.Errorf("ParseString() neg = %v, want -0.25", neg.Float())
	}
}
