package skipindex

import "fmt"

func ExampleSkipList_Insert() {
	list, _ := New(IntHasher)
	list.Insert(50)
	list.Insert(10)
	list.Insert(90)
	fmt.Println(list.Len())
	// Output: 3
}

func ExampleSkipList_Find() {
	list, _ := FromSlice(IntHasher, []int{2, 4, 6})
	fmt.Println(list.Find(4).Valid())
	fmt.Println(list.Find(5).Valid())
	// Output:
	// true
	// false
}

func ExampleSkipList_Erase() {
	list, _ := FromSlice(IntHasher, []int{1, 2, 3})
	if err := list.Erase(2); err != nil {
		fmt.Println(err)
	}
	fmt.Println(list.Len())
	// Output: 2
}

func ExampleSkipList_Iterator() {
	list, _ := FromSlice(IntHasher, []int{30, 10, 20})
	it := list.Iterator()
	for it.Next() {
		fmt.Printf("%d ", it.Key())
	}
	fmt.Println()
	// Output: 10 20 30
}

func ExampleIterator_SeekGE() {
	list, _ := FromSlice(IntHasher, []int{10, 30, 50})
	it := list.Iterator()
	if it.SeekGE(20) {
		fmt.Println(it.Key())
	}
	// Output: 30
}

func ExampleSkipList_collisions() {
	// Bucketing values into one key keeps them in a single node's multiset.
	list, _ := New(func(v int) uint64 { return uint64(v % 10) })
	list.Insert(7)
	list.Insert(17)
	fmt.Println(list.Len(), list.NumValues())
	// Output: 1 2
}
