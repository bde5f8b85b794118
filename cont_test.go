// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit_test

import (
	"testing"

	"code.hybscloud.com/fnkit"
)

func TestReturnRun(t *testing.T) {
	got := fnkit.Run(fnkit.Return[int](42))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestReturnRunString(t *testing.T) {
	got := fnkit.Run(fnkit.Return[string]("hello"))
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRunWith(t *testing.T) {
	m := fnkit.Return[string, int](42)
	got := fnkit.RunWith(m, func(x int) string {
		return "value"
	})
	if got != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
}

func TestSuspend(t *testing.T) {
	m := fnkit.Suspend(func(k func(int) int) int {
		return k(k(3))
	})
	got := fnkit.RunWith(m, func(x int) int { return x * 2 })
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestContBindSimple(t *testing.T) {
	m := fnkit.Return[int](10)
	n := fnkit.ContBind(m, func(x int) fnkit.Cont[int, int] {
		return fnkit.Return[int](x * 2)
	})
	got := fnkit.Run(n)
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestContBindChain(t *testing.T) {
	m := fnkit.Return[int](5)
	n := fnkit.ContBind(m, func(x int) fnkit.Cont[int, int] {
		return fnkit.ContBind(fnkit.Return[int](x+1), func(y int) fnkit.Cont[int, int] {
			return fnkit.Return[int](y * 2)
		})
	})
	got := fnkit.Run(n)
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestContBindLeftIdentity(t *testing.T) {
	// ContBind(Return(a), f) ≡ f(a)
	a := 7
	f := func(x int) fnkit.Cont[int, int] {
		return fnkit.Return[int](x * 3)
	}

	left := fnkit.Run(fnkit.ContBind(fnkit.Return[int](a), f))
	right := fnkit.Run(f(a))

	if left != right {
		t.Fatalf("left identity failed: %d != %d", left, right)
	}
}

func TestContMap(t *testing.T) {
	m := fnkit.ContMap(fnkit.Return[string](21), func(x int) string {
		if x*2 == 42 {
			return "forty-two"
		}
		return "other"
	})
	got := fnkit.Run(m)
	if got != "forty-two" {
		t.Fatalf("got %q, want %q", got, "forty-two")
	}
}

func TestContThen(t *testing.T) {
	var order []int
	first := fnkit.Suspend(func(k func(int) int) int {
		order = append(order, 1)
		return k(1)
	})
	second := fnkit.Suspend(func(k func(int) int) int {
		order = append(order, 2)
		return k(2)
	})
	got := fnkit.Run(fnkit.ContThen(first, second))
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("got order %v, want [1 2]", order)
	}
}

func TestContDroppedContinuation(t *testing.T) {
	called := false
	m := fnkit.Suspend(func(k func(int) int) int {
		return -1 // abort: never call k
	})
	n := fnkit.ContBind(m, func(x int) fnkit.Cont[int, int] {
		called = true
		return fnkit.Return[int](x)
	})
	got := fnkit.Run(n)
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
	if called {
		t.Fatal("continuation should not run after abort")
	}
}
