package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := GetImplementation().CreateDocument("", "", nil)
	if err != nil {
		t.Fatalf("CreateDocument failed: %s", err)
	}
	return doc
}

func TestAppendChildLegality(t *testing.T) {
	doc := makeDocument(t)

	root, err := doc.CreateElement("root")
	if !assert.NoError(t, err, `CreateElement("root") succeeds`) {
		return
	}
	if !assert.NoError(t, doc.AppendChild(root), "element under document") {
		return
	}

	// a document accepts exactly one element
	second, _ := doc.CreateElement("second")
	err = doc.AppendChild(second)
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "second document element is rejected") {
		return
	}

	// text directly under a document is not allowed
	err = doc.AppendChild(doc.CreateText("stray"))
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "text under document is rejected") {
		return
	}

	// comments and PIs are fine at document level
	if !assert.NoError(t, doc.AppendChild(doc.CreateComment("ok")), "comment under document") {
		return
	}
	pi, err := doc.CreatePI("style", `href="a.css"`)
	if !assert.NoError(t, err, "CreatePI succeeds") {
		return
	}
	if !assert.NoError(t, doc.AppendChild(pi), "PI under document") {
		return
	}

	// leaf kinds accept no children at all
	txt := doc.CreateText("leaf")
	err = txt.AppendChild(doc.CreateComment("nope"))
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "text accepts no children") {
		return
	}
}

func TestAppendChildCycle(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	child, _ := doc.CreateElement("child")
	grandchild, _ := doc.CreateElement("grandchild")

	if !assert.NoError(t, doc.AppendChild(root), "root attaches") {
		return
	}
	if !assert.NoError(t, root.AppendChild(child), "child attaches") {
		return
	}
	if !assert.NoError(t, child.AppendChild(grandchild), "grandchild attaches") {
		return
	}

	err := grandchild.AppendChild(root)
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "ancestor under descendant is rejected") {
		return
	}
	err = child.AppendChild(child)
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "self-append is rejected") {
		return
	}
}

func TestAppendChildWrongDocument(t *testing.T) {
	doc1 := makeDocument(t)
	doc2 := makeDocument(t)

	root, _ := doc1.CreateElement("root")
	if !assert.NoError(t, doc1.AppendChild(root), "root attaches to its own document") {
		return
	}

	alien, _ := doc2.CreateElement("alien")
	err := root.AppendChild(alien)
	if !assert.True(t, errors.Is(err, ErrWrongDocument), "cross-document insertion is rejected") {
		return
	}

	// ImportNode is the sanctioned path
	imported, err := doc1.ImportNode(alien, true)
	if !assert.NoError(t, err, "ImportNode succeeds") {
		return
	}
	if !assert.NoError(t, root.AppendChild(imported), "imported copy attaches") {
		return
	}
	if !assert.Nil(t, alien.Parent(), "source node is untouched") {
		return
	}
}

func TestInsertMoves(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	a, _ := doc.CreateElement("a")
	b, _ := doc.CreateElement("b")
	if !assert.NoError(t, root.AppendChild(a), "a attaches") {
		return
	}
	if !assert.NoError(t, root.AppendChild(b), "b attaches") {
		return
	}

	// inserting an already-attached node moves it
	if !assert.NoError(t, root.InsertBefore(b, a), "b moves before a") {
		return
	}
	if !assert.Equal(t, Node(b), root.FirstChild(), "b is now first") {
		return
	}
	if !assert.Equal(t, Node(a), root.LastChild(), "a is now last") {
		return
	}
	if !assert.Len(t, root.ChildNodes(nil), 2, "no duplicate links") {
		return
	}

	// reference child must be under the parent
	other, _ := doc.CreateElement("other")
	err := root.InsertBefore(doc.CreateText("x"), other)
	if !assert.True(t, errors.Is(err, ErrNotFound), "detached reference child is rejected") {
		return
	}
}

func TestInsertBeforeSelf(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	a, _ := doc.CreateElement("a")
	b, _ := doc.CreateElement("b")
	_ = root.AppendChild(a)
	_ = root.AppendChild(b)

	// a node inserted before itself keeps its position
	if !assert.NoError(t, root.InsertBefore(b, b), "InsertBefore(n, n) succeeds") {
		return
	}
	if !assert.NoError(t, root.InsertBefore(a, a), "InsertBefore(n, n) succeeds for a non-last child") {
		return
	}

	if !assert.Equal(t, Node(a), root.FirstChild(), "first child unchanged") {
		return
	}
	if !assert.Equal(t, Node(b), root.LastChild(), "last child unchanged") {
		return
	}
	if !assert.Nil(t, b.NextSibling(), "no self-link on the last child") {
		return
	}

	// a bounded walk must terminate at the real child count
	count := 0
	for c := root.FirstChild(); c != nil && count < 10; c = c.NextSibling() {
		count++
	}
	if !assert.Equal(t, 2, count, "sibling chain is intact") {
		return
	}
}

func TestReplaceChild(t *testing.T) {
	doc := makeDocument(t)
	oldRoot, _ := doc.CreateElement("old")
	_ = doc.AppendChild(oldRoot)

	// replacing the document element with another element is allowed
	// even though a second element child is not
	newRoot, _ := doc.CreateElement("new")
	if !assert.NoError(t, doc.ReplaceChild(newRoot, oldRoot), "document element swaps in place") {
		return
	}
	if !assert.Equal(t, newRoot, doc.DocumentElement(), "new element took over") {
		return
	}
	if !assert.Nil(t, oldRoot.Parent(), "old element is detached") {
		return
	}

	detached, _ := doc.CreateElement("detached")
	err := doc.ReplaceChild(newRoot, detached)
	if !assert.True(t, errors.Is(err, ErrNotFound), "replacing a non-child is rejected") {
		return
	}
}

func TestReplaceChildSelf(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	a, _ := doc.CreateElement("a")
	b, _ := doc.CreateElement("b")
	_ = root.AppendChild(a)
	_ = root.AppendChild(b)

	// replacing a node with itself leaves everything attached
	if !assert.NoError(t, root.ReplaceChild(a, a), "ReplaceChild(n, n) succeeds") {
		return
	}
	if !assert.Equal(t, Node(root), a.Parent(), "child still attached") {
		return
	}
	if !assert.Equal(t, Node(a), root.FirstChild(), "first child unchanged") {
		return
	}
	if !assert.Equal(t, Node(b), root.LastChild(), "last child unchanged") {
		return
	}
	if !assert.Len(t, root.ChildNodes(nil), 2, "child count unchanged") {
		return
	}
}

func TestRemoveChild(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	child, _ := doc.CreateElement("child")
	_ = root.AppendChild(child)

	if !assert.NoError(t, root.RemoveChild(child), "RemoveChild succeeds") {
		return
	}
	if !assert.Nil(t, child.Parent(), "removed child is detached") {
		return
	}
	if !assert.False(t, root.HasChildNodes(), "parent is empty again") {
		return
	}

	err := root.RemoveChild(child)
	if !assert.True(t, errors.Is(err, ErrNotFound), "removing twice is rejected") {
		return
	}
}

func TestFragmentSplice(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	frag := doc.CreateDocumentFragment()
	for _, s := range []string{"one", "two", "three"} {
		e, _ := doc.CreateElement(s)
		if !assert.NoError(t, frag.AppendChild(e), "fragment accepts %s", s) {
			return
		}
	}

	if !assert.NoError(t, root.AppendChild(frag), "fragment splices into root") {
		return
	}
	if !assert.False(t, frag.HasChildNodes(), "fragment is emptied") {
		return
	}

	children := root.ChildNodes(nil)
	if !assert.Len(t, children, 3, "all fragment children moved") {
		return
	}
	if !assert.Equal(t, "one", children[0].Name(), "order preserved") {
		return
	}
	if !assert.Equal(t, "three", children[2].Name(), "order preserved") {
		return
	}
}

func TestFragmentIntoDocument(t *testing.T) {
	doc := makeDocument(t)
	frag := doc.CreateDocumentFragment()
	e1, _ := doc.CreateElement("one")
	e2, _ := doc.CreateElement("two")
	_ = frag.AppendChild(e1)
	_ = frag.AppendChild(e2)

	// a fragment holding two elements cannot land under a document
	err := doc.AppendChild(frag)
	if !assert.True(t, errors.Is(err, ErrHierarchyRequest), "two-element fragment is rejected") {
		return
	}
	if !assert.Len(t, frag.ChildNodes(nil), 2, "fragment is untouched on failure") {
		return
	}
}

func TestNormalize(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	_ = root.AppendChild(doc.CreateText("Hello"))
	_ = root.AppendChild(doc.CreateText(", "))
	_ = root.AppendChild(doc.CreateText(""))
	_ = root.AppendChild(doc.CreateText("World!"))
	inner, _ := doc.CreateElement("inner")
	_ = root.AppendChild(inner)
	_ = inner.AppendChild(doc.CreateText("a"))
	_ = inner.AppendChild(doc.CreateText("b"))

	root.Normalize()

	children := root.ChildNodes(nil)
	if !assert.Len(t, children, 2, "adjacent text merged, empty text dropped") {
		return
	}
	txt, ok := AsText(children[0])
	if !assert.True(t, ok, "first child is text") {
		return
	}
	if !assert.Equal(t, "Hello, World!", txt.Data(), "merged content") {
		return
	}

	innerChildren := inner.ChildNodes(nil)
	if !assert.Len(t, innerChildren, 1, "normalization recurses") {
		return
	}

	// running it again changes nothing
	root.Normalize()
	if !assert.Len(t, root.ChildNodes(nil), 2, "normalize is idempotent") {
		return
	}
}

func TestNormalizeGuarded(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)
	_ = root.AppendChild(doc.CreateText("a"))
	_ = root.AppendChild(doc.CreateText("b"))

	// a read-only node is left untouched
	root.readonly = true
	root.Normalize()
	if !assert.Len(t, root.ChildNodes(nil), 2, "read-only node is not normalized") {
		return
	}
	root.readonly = false

	// same for a node whose edit guard is held elsewhere
	if !assert.True(t, root.beginEdit(), "edit flag acquired") {
		return
	}
	root.Normalize()
	if !assert.Len(t, root.ChildNodes(nil), 2, "guarded node is not normalized") {
		return
	}
	root.endEdit()

	root.Normalize()
	if !assert.Len(t, root.ChildNodes(nil), 1, "normalization proceeds once the guard is free") {
		return
	}
}

func TestMutationGuard(t *testing.T) {
	doc := makeDocument(t)
	root, _ := doc.CreateElement("root")
	_ = doc.AppendChild(root)

	// simulate a competing mutation holding the edit flag
	if !assert.True(t, root.beginEdit(), "edit flag acquired") {
		return
	}
	child, _ := doc.CreateElement("child")
	err := root.AppendChild(child)
	if !assert.True(t, errors.Is(err, ErrResourceConflict), "concurrent mutation is rejected") {
		return
	}
	root.endEdit()

	if !assert.NoError(t, root.AppendChild(child), "mutation succeeds after release") {
		return
	}
}
