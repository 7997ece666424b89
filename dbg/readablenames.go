package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for things that otherwise only have an address or a number,
// so that debug logs about many polygons are easier to follow by eye. Names
// are memoized forever, so only use this on debug paths.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so the same name doesn't refer to
	// the same polygon between runs. Make that obvious.
	petname.NonDeterministicMode()
}

// Name returns a stable name like "BraveOtter" for obj, which must be a nillable
// value such as a pointer. Nil gets "Ø".
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
