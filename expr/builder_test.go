package expr

import (
	"testing"

	"github.com/npillmayer/nedex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	h := Hole()
	if h.Type() != HoleType || !h.IsHole() || h.HasChildren() {
		t.Errorf("fresh hole misreports its state")
	}
	th := HoleWithChildren(BuilderFromToken(nedex.T("a")))
	if th.Type() != TokenHoleType || !th.IsHole() || !th.HasChildren() {
		t.Errorf("token hole misreports its state")
	}
	e := BuilderFromToken(nedex.T("a"))
	if e.Type() != ExprType || e.IsHole() || !e.HasChildren() {
		t.Errorf("wrapped expression misreports its state")
	}
}

func TestBuilderTakeHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := BuilderFromToken(nedex.T("a"))
	b.PushToken(nedex.T("b"))
	head, ok := b.TakeHead()
	if !ok || head.Lexeme() != "a" {
		t.Fatalf("expected to take head 'a', got %v", head)
	}
	if b.Type() != TokenHoleType {
		t.Errorf("builder should demote to a token hole, is %s", b.Type())
	}
	if len(b.Children()) != 1 {
		t.Errorf("taking the head lost the children")
	}
	if _, ok := b.TakeHead(); ok {
		t.Errorf("token hole yielded a head token")
	}
	if _, ok := Hole().TakeHead(); ok {
		t.Errorf("hole yielded a head token")
	}
}

func TestBuilderSetHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	// on a bare hole: no-op
	h := Hole()
	if _, ok := h.SetHead(nedex.T("a")); ok {
		t.Errorf("SetHead on a hole reported a previous head")
	}
	if h.Type() != HoleType {
		t.Errorf("SetHead changed the state of a bare hole")
	}
	// on a token hole: promotion to a partial node
	th := HoleWithChildren(BuilderFromToken(nedex.T("b")))
	if prev, ok := th.SetHead(nedex.T("a")); ok || prev != nil {
		t.Errorf("token hole reported a previous head")
	}
	if th.Type() != PartType {
		t.Fatalf("token hole did not promote to a partial node, is %s", th.Type())
	}
	want := FromToken(nedex.T("a")).Push(FromToken(nedex.T("b")))
	if !th.EqualsExpr(want) {
		t.Errorf("promoted node is %s, want %s", th, want)
	}
	// on a resolved node: head swap
	prev, ok := th.SetHead(nedex.T("c"))
	if !ok || prev.Lexeme() != "a" {
		t.Errorf("expected previous head 'a', got %v", prev)
	}
	// on a wrapped expression: head swap as well
	e := BuilderFromToken(nedex.T("x"))
	prev, ok = e.SetHead(nedex.T("y"))
	if !ok || prev.Lexeme() != "x" {
		t.Errorf("expected previous head 'x', got %v", prev)
	}
}

func TestBuilderChildrenPromotesExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	e := FromToken(nedex.T("a")).Push(FromToken(nedex.T("b"))).Push(FromToken(nedex.T("c")))
	b := FromExpr(e)
	children := b.Children()
	if b.Type() != PartType {
		t.Fatalf("accessing children did not promote the wrapped expression")
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children after promotion, got %d", len(children))
	}
	for i, child := range children {
		if child.Type() != ExprType {
			t.Errorf("child %d is not a resolved builder", i)
		}
	}
}

func TestBuilderChildrenOfHolePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("Children on a bare hole did not panic")
		}
	}()
	Hole().Children()
}

func TestBuilderCanFinish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := Hole()
	if b.CanFinish() {
		t.Errorf("a hole reports it can finish")
	}
	b.Lens().FillToken(nedex.T("a"))
	if !b.CanFinish() {
		t.Errorf("a filled builder reports it cannot finish")
	}
	b.Lens().PushToken(nedex.T("a"))
	if !b.CanFinish() {
		t.Errorf("builder with resolved child reports it cannot finish")
	}
	b.Lens().PushChild(Hole())
	if b.CanFinish() {
		t.Errorf("builder with a hole child reports it can finish")
	}
}

func TestBuilderFinishRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := BuilderFromToken(nedex.T("a"))
	b.PushToken(nedex.T("b"))
	b.PushChild(HoleWithChildren(BuilderFromToken(nedex.T("d"))))
	b.Children()[1].SetHead(nedex.T("c"))
	e, err := b.Finish()
	if err != nil {
		t.Fatalf("complete builder failed to finish: %v", err)
	}
	want := FromToken(nedex.T("a")).
		Push(FromToken(nedex.T("b"))).
		Push(FromToken(nedex.T("c")).Push(FromToken(nedex.T("d"))))
	if !e.Equals(want) {
		t.Errorf("finished expression is %s, want %s", e, want)
	}
	if b.Type() != HoleType {
		t.Errorf("builder was not reset to a hole after finishing")
	}
}

func TestBuilderFinishIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := BuilderFromToken(nedex.T("a"))
	b.PushToken(nedex.T("b"))
	b.PushChild(Hole())
	if _, err := b.Finish(); err != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	// structure must be fully intact
	if b.Type() != PartType {
		t.Errorf("failed finish changed the builder state to %s", b.Type())
	}
	if len(b.Children()) != 2 {
		t.Fatalf("failed finish changed the child count")
	}
	if !b.Children()[0].EqualsExpr(FromToken(nedex.T("b"))) {
		t.Errorf("failed finish changed a resolved child")
	}
	if b.Children()[1].Type() != HoleType {
		t.Errorf("failed finish changed the hole child")
	}
	if b.CanFinish() {
		t.Errorf("CanFinish changed across a failed finish")
	}
	// filling the hole makes the same builder finishable
	b.Lens().VisitChild(1).FillToken(nedex.T("c"))
	e, err := b.Finish()
	if err != nil {
		t.Fatalf("builder did not recover after filling the hole: %v", err)
	}
	if e.String() != "a [b, c]" {
		t.Errorf("expected 'a [b, c]', got '%s'", e)
	}
}

func TestBuilderMustFinishPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("MustFinish on an incomplete builder did not panic")
		}
	}()
	Hole().MustFinish()
}

func TestBuilderHoleNeverEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	h := Hole()
	if h.Equals(h) {
		t.Errorf("a hole equals itself")
	}
	if Hole().Equals(Hole()) {
		t.Errorf("two holes are equal")
	}
	th := HoleWithChildren(BuilderFromToken(nedex.T("a")))
	if th.Equals(th) {
		t.Errorf("a token hole equals itself")
	}
	if th.EqualsExpr(FromToken(nedex.T("a"))) {
		t.Errorf("a token hole equals an expression")
	}
}

func TestBuilderCrossStateEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	wrapped := FromExpr(FromToken(nedex.T("a")).Push(FromToken(nedex.T("b"))))
	part := BuilderFromToken(nedex.T("a"))
	part.PushToken(nedex.T("b")) // fast path, stays a wrapped expression
	part.Children()              // promotes to a partial node
	if part.Type() != PartType {
		t.Fatalf("test setup: expected a partial node")
	}
	if !wrapped.Equals(part) || !part.Equals(wrapped) {
		t.Errorf("wrapped expression and equivalent partial node do not match")
	}
	// a hole anywhere poisons equality
	part.PushChild(Hole())
	if part.Equals(part.Clone()) {
		t.Errorf("builders with hole children compare equal")
	}
}

func TestBuilderClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := BuilderFromToken(nedex.T("a"))
	b.PushToken(nedex.T("b"))
	b.PushChild(Hole())
	clone := b.Clone()
	clone.Lens().VisitChild(1).FillToken(nedex.T("c"))
	if b.CanFinish() {
		t.Errorf("filling a hole in the clone affected the original")
	}
	if !clone.CanFinish() {
		t.Errorf("clone did not become finishable")
	}
}

func TestBuilderString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	if s := Hole().String(); s != "_" {
		t.Errorf("hole displays as '%s'", s)
	}
	b := BuilderFromToken(nedex.T("a"))
	b.PushChild(Hole())
	b.PushToken(nedex.T("b"))
	if s := b.String(); s != "a [_, b]" {
		t.Errorf("expected 'a [_, b]', got '%s'", s)
	}
	th := HoleWithChildren(BuilderFromToken(nedex.T("a")))
	if s := th.String(); s != "_ [a]" {
		t.Errorf("expected '_ [a]', got '%s'", s)
	}
}

// The end-to-end scenario: grow a tree from a single hole, finish it,
// reopen it, and extend it through a lens.
func TestBuilderEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nedex.expr")
	defer teardown()
	//
	b := Hole()
	b.Lens().FillToken(nedex.T("a"))
	b.PushToken(nedex.T("a"))
	e, err := b.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if e.String() != "a [a]" {
		t.Fatalf("expected 'a [a]', got '%s'", e)
	}
	reopened := FromExpr(e)
	reopened.PushChild(Hole())
	reopened.Lens().VisitChild(1).FillToken(nedex.T("b"))
	e2 := reopened.MustFinish()
	if e2.String() != "a [a, b]" {
		t.Errorf("expected 'a [a, b]', got '%s'", e2)
	}
}
