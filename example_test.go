// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnkit_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"code.hybscloud.com/fnkit"
)

func ExampleCompose() {
	add1 := func(x int) int { return x + 1 }
	times2 := func(x int) int { return x * 2 }

	fmt.Println(fnkit.Compose(add1, times2)(5))
	fmt.Println(fnkit.Pipe(add1, times2)(5))
	// Output:
	// 11
	// 12
}

func ExampleMatch() {
	sign := fnkit.Match(
		func(int) string { return "positive" },
		fnkit.Case(func(x int) bool { return x < 0 }, func(int) string { return "negative" }),
		fnkit.Case(func(x int) bool { return x == 0 }, func(int) string { return "zero" }),
	)
	for _, x := range []int{-4, 0, 9} {
		fmt.Println(sign(x))
	}
	// Output:
	// negative
	// zero
	// positive
}

func ExampleWhen() {
	grow := fnkit.When(func(x int) bool { return x < 100 }, func(x int) int { return x * 3 })
	fmt.Println(grow(2))
	// Output: 162
}

func ExamplePartial() {
	join := func(args ...any) any {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprint(a)
		}
		return strings.Join(parts, "-")
	}
	f := fnkit.Partial(join, fnkit.Hole, "b", fnkit.Hole)
	fmt.Println(f("a", "c", "d"))
	fmt.Println(f("x", "y"))
	// Output:
	// a-b-c-d
	// x-b-y
}

func ExampleCurry() {
	volume := fnkit.Curry(3, func(args ...any) any {
		return args[0].(int) * args[1].(int) * args[2].(int)
	})
	fmt.Println(volume(2).(fnkit.Variadic)(3, 4))
	// Output: 24
}

func ExampleEitherOf() {
	fmt.Println(fnkit.EitherOf(42))
	fmt.Println(fnkit.EitherOf(0))
	fmt.Println(fnkit.EitherOf("").IsLeft())
	// Output:
	// Right(42)
	// Left(0)
	// true
}

func ExampleFlatMapEither() {
	parse := func(s string) fnkit.Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fnkit.Left[string, int]("not a number: " + s)
		}
		return fnkit.Right[string](n)
	}
	fmt.Println(fnkit.FlatMapEither(fnkit.Right[string]("21"), parse).Map(func(n int) int { return n * 2 }))
	fmt.Println(fnkit.FlatMapEither(fnkit.Right[string]("x"), parse))
	// Output:
	// Right(42)
	// Left(not a number: x)
}

func ExampleOptionalOf() {
	var missing *int
	fmt.Println(fnkit.OptionalOf(missing))
	fmt.Println(fnkit.OptionalOf(5).Map(func(x int) int { return x + 1 }))
	fmt.Println(fnkit.None[string]().OrElse("fallback"))
	// Output:
	// None
	// Some(6)
	// fallback
}

func ExampleTask_Chain() {
	half := func(x int) fnkit.Task[string, int] {
		if x%2 != 0 {
			return fnkit.Rejected[string, int](strconv.Itoa(x) + " is odd")
		}
		return fnkit.Resolved[string](x / 2)
	}

	for _, start := range []int{12, 10} {
		fnkit.Resolved[string](start).Chain(half).Chain(half).Fork(
			func(e string) { fmt.Println("rejected:", e) },
			func(x int) { fmt.Println("resolved:", x) },
		)
	}
	// Output:
	// resolved: 3
	// rejected: 5 is odd
}

func ExampleAwaitValue() {
	ctx := context.Background()
	task := fnkit.Attempt(ctx, func(context.Context) (int, error) { return 20, nil }).
		Map(func(x int) int { return x + 1 }).
		Map(func(x int) int { return x * 2 })

	v, err := fnkit.AwaitValue(ctx, task)
	fmt.Println(v, err)
	// Output: 42 <nil>
}

func ExampleFnLogTo() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	logStarted := fnkit.FnLogTo(fnkit.NewConsole(logger), "started", 8080)

	fmt.Println("before")
	logStarted()
	// Output:
	// before
	// level=INFO msg=started params=[8080]
}
