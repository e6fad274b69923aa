package trie

import (
	"fmt"
	"strings"
)

func Example() {
	t := FromSlice(strings.Split("Hello, World!", ""))

	fmt.Println(t.SearchSlice([]string{"H", "e", "l", "l", "o"}, false))
	fmt.Println(t.SearchSlice([]string{"H", "e", "l", "l", "o"}, true))

	t.InsertSlice([]string{"H", "e", "l", "l", "o"})
	fmt.Println(t.SearchSlice([]string{"H", "e", "l", "l", "o"}, false))

	// Output:
	// false
	// true
	// true
}

func Example_paths() {
	t := New[string]()
	t.InsertSlice(strings.Split("usr/local/bin", "/"))
	t.InsertSlice(strings.Split("usr/lib", "/"))

	fmt.Println(t.SearchSlice([]string{"usr", "local"}, true))
	fmt.Println(t.SearchSlice([]string{"usr", "lib"}, false))
	fmt.Println(t.SearchSlice([]string{"usr", "share"}, true))

	// Output:
	// true
	// true
	// false
}

func ExampleWords() {
	w := NewWords()
	w.Insert("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

	fmt.Println(w.HasPrefix("wed"))
	fmt.Println(w.Contains("friday"))
	fmt.Println(w.Contains("Fri"))

	// Output:
	// true
	// true
	// false
}
