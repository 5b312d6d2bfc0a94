package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterData(t *testing.T) {
	doc := makeDocument(t)
	txt := doc.CreateText("hello")

	if !assert.Equal(t, 5, txt.Length(), "Length counts runes") {
		return
	}

	sub, err := txt.SubstringData(1, 3)
	if !assert.NoError(t, err, "SubstringData succeeds") {
		return
	}
	if !assert.Equal(t, "ell", sub, "substring matches") {
		return
	}

	// a count running past the end is clamped
	sub, err = txt.SubstringData(3, 100)
	if !assert.NoError(t, err, "overlong count is clamped") {
		return
	}
	if !assert.Equal(t, "lo", sub, "clamped substring matches") {
		return
	}

	if !assert.NoError(t, txt.AppendData(" world"), "AppendData succeeds") {
		return
	}
	if !assert.Equal(t, "hello world", txt.Data(), "content after append") {
		return
	}

	if !assert.NoError(t, txt.InsertData(5, ","), "InsertData succeeds") {
		return
	}
	if !assert.Equal(t, "hello, world", txt.Data(), "content after insert") {
		return
	}

	if !assert.NoError(t, txt.ReplaceData(7, 5, "there"), "ReplaceData succeeds") {
		return
	}
	if !assert.Equal(t, "hello, there", txt.Data(), "content after replace") {
		return
	}

	if !assert.NoError(t, txt.SetData("hello"), "SetData succeeds") {
		return
	}
	if !assert.NoError(t, txt.DeleteData(1, 3), "DeleteData succeeds") {
		return
	}
	if !assert.Equal(t, "ho", txt.Data(), "content after delete") {
		return
	}

	err = txt.DeleteData(10, 1)
	if !assert.True(t, errors.Is(err, ErrIndexSize), "offset past the end is rejected") {
		return
	}
	err = txt.DeleteData(0, -1)
	if !assert.True(t, errors.Is(err, ErrIndexSize), "negative count is rejected") {
		return
	}
	_, err = txt.SubstringData(-1, 0)
	if !assert.True(t, errors.Is(err, ErrIndexSize), "negative offset is rejected") {
		return
	}
}

func TestCharacterDataRunes(t *testing.T) {
	doc := makeDocument(t)
	txt := doc.CreateText("日本語text")

	if !assert.Equal(t, 7, txt.Length(), "Length counts runes, not bytes") {
		return
	}
	sub, err := txt.SubstringData(0, 3)
	if !assert.NoError(t, err, "SubstringData succeeds") {
		return
	}
	if !assert.Equal(t, "日本語", sub, "rune-addressed substring") {
		return
	}
	if !assert.NoError(t, txt.DeleteData(3, 4), "DeleteData with rune offsets") {
		return
	}
	if !assert.Equal(t, "日本語", txt.Data(), "ASCII tail removed") {
		return
	}
}

func TestSplitText(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	txt := doc.CreateText("hello world")
	_ = root.AppendChild(txt)

	rest, err := txt.SplitText(5)
	if !assert.NoError(t, err, "SplitText succeeds") {
		return
	}
	if !assert.Equal(t, "hello", txt.Data(), "head keeps the prefix") {
		return
	}
	if !assert.Equal(t, " world", rest.Data(), "tail holds the remainder") {
		return
	}
	if !assert.Equal(t, Node(rest), txt.NextSibling(), "tail inserted as next sibling") {
		return
	}
	if !assert.Equal(t, Node(root), rest.Parent(), "tail shares the parent") {
		return
	}

	_, err = txt.SplitText(99)
	if !assert.True(t, errors.Is(err, ErrIndexSize), "offset past the end is rejected") {
		return
	}

	// splitting a detached node yields a detached remainder
	free := doc.CreateText("ab")
	rest, err = free.SplitText(1)
	if !assert.NoError(t, err, "detached SplitText succeeds") {
		return
	}
	if !assert.Nil(t, rest.Parent(), "remainder is detached") {
		return
	}
}

func TestCommentData(t *testing.T) {
	doc := makeDocument(t)
	c := doc.CreateComment("draft")

	if !assert.NoError(t, c.AppendData(" v2"), "comments share the character data operations") {
		return
	}
	if !assert.Equal(t, "draft v2", c.Data(), "content matches") {
		return
	}
	if !assert.Equal(t, "#comment", c.Name(), "fixed name") {
		return
	}
}

func TestCDATAData(t *testing.T) {
	doc := makeDocument(t)
	c := doc.CreateCDATASection("<raw>&stuff</raw>")

	if !assert.Equal(t, "#cdata-section", c.Name(), "fixed name") {
		return
	}
	if !assert.Equal(t, "<raw>&stuff</raw>", c.Data(), "markup characters kept verbatim") {
		return
	}
}
