package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nyayamitra/nyayamitra/internal/rag"
)

func testPair(t *testing.T, question, answerText string) (rag.Query, rag.Answer) {
	t.Helper()
	query, err := rag.NewQuery(question, "en")
	if err != nil {
		t.Fatalf("NewQuery(%q) failed: %v", question, err)
	}
	return query, rag.Answer{Text: answerText, Sources: []string{"s1"}}
}

func TestStore_EmptyAtStart(t *testing.T) {
	store := NewStore()

	if _, ok := store.LoadLast(); ok {
		t.Error("LoadLast() on a fresh store must report nothing saved")
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	store := NewStore()
	query, answer := testPair(t, "What is a caveat petition?", "A caveat is a notice...")

	store.Save(query, answer)

	saved, ok := store.LoadLast()
	if !ok {
		t.Fatal("LoadLast() found nothing after Save()")
	}
	if saved.Query.ID != query.ID {
		t.Errorf("LoadLast() query ID = %q, want %q", saved.Query.ID, query.ID)
	}
	if saved.Answer.Text != answer.Text {
		t.Errorf("LoadLast() answer = %q, want %q", saved.Answer.Text, answer.Text)
	}
}

func TestStore_SecondSaveWins(t *testing.T) {
	store := NewStore()
	firstQuery, firstAnswer := testPair(t, "first question", "first answer")
	secondQuery, secondAnswer := testPair(t, "second question", "second answer")

	store.Save(firstQuery, firstAnswer)
	store.Save(secondQuery, secondAnswer)

	saved, ok := store.LoadLast()
	if !ok {
		t.Fatal("LoadLast() found nothing after two saves")
	}
	if saved.Query.ID != secondQuery.ID || saved.Answer.Text != secondAnswer.Text {
		t.Errorf("LoadLast() returned %q/%q, want the second pair", saved.Query.Normalized, saved.Answer.Text)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			query, answer := testPair(t, fmt.Sprintf("question %d", n), fmt.Sprintf("answer %d", n))
			store.Save(query, answer)
		}(i)
		go func() {
			defer wg.Done()
			if saved, ok := store.LoadLast(); ok {
				// A read must never observe a pair mixing two saves.
				if saved.Query.Normalized == "" || saved.Answer.Text == "" {
					t.Error("LoadLast() observed a partially written pair")
				}
			}
		}()
	}
	wg.Wait()
}
