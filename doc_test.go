package trie

import (
	"fmt"
	"sort"
)

func Example() {
	t := New()
	t.Insert("eat", "eating", "eats", "wizard")

	words := t.WordsWithPrefix("eat")
	sort.Strings(words)
	fmt.Println(words)

	longest := t.Longest()
	sort.Strings(longest)
	fmt.Println(longest, t.Shortest(), t.Len())

	// Output:
	// [eat eating eats]
	// [eating wizard] [eat] 4
}

func Example_normalisation() {
	t := New(WithNormalisation(), CaseInsensitive())
	t.Insert("Jürgen")

	fmt.Println(t.Contains("jurgen"), t.WordsWithPrefix("JUR"))

	// Output:
	// true [jurgen]
}

func ExampleDataTrie() {
	pages := NewData[int]()
	pages.Insert("apple", 1)
	pages.Insert("apple", 2)
	pages.Insert("avocado", 15)

	exact, _ := pages.GetData("apple", false)
	fmt.Println(exact)

	all, _ := pages.GetData("a", true)
	sort.Ints(all)
	fmt.Println(all)

	// Output:
	// [1 2]
	// [1 2 15]
}
