package core

func setupArithmeticOperations(env *Environment) {
	native := func(name string, fn func([]Value, *Environment) (Value, error)) {
		env.Set(Symbol(name), &Native{Name: name, Fn: fn})
	}

	native("+", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("+", args, 1)
		if err != nil {
			return nil, err
		}
		sum := Number(0)
		for _, n := range nums {
			sum += n
		}
		return sum, nil
	})

	native("-", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("-", args, 1)
		if err != nil {
			return nil, err
		}
		if len(nums) == 1 {
			return -nums[0], nil
		}
		result := nums[0]
		for _, n := range nums[1:] {
			result -= n
		}
		return result, nil
	})

	native("*", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("*", args, 1)
		if err != nil {
			return nil, err
		}
		product := Number(1)
		for _, n := range nums {
			product *= n
		}
		return product, nil
	})

	native("/", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("/", args, 2)
		if err != nil {
			return nil, err
		}
		result := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return nil, divideByZeroError("/")
			}
			result /= n
		}
		return result, nil
	})

	native("%", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("%", args, 2)
		if err != nil {
			return nil, err
		}
		if len(nums) != 2 {
			return nil, arityError("%% requires exactly 2 arguments, got %d", len(nums))
		}
		if nums[1] == 0 {
			return nil, divideByZeroError("%")
		}
		a, b := int64(nums[0]), int64(nums[1])
		return Number(a % b), nil
	})

	native("=", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 2 {
			return nil, arityError("= requires at least 2 arguments, got %d", len(args))
		}
		for i := 1; i < len(args); i++ {
			if !Equal(args[0], args[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})

	native("not=", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, arityError("not= requires exactly 2 arguments, got %d", len(args))
		}
		return Bool(!Equal(args[0], args[1])), nil
	})

	cmp := func(name string, pred func(a, b Number) bool) {
		native(name, func(args []Value, _ *Environment) (Value, error) {
			nums, err := numbers(name, args, 2)
			if err != nil {
				return nil, err
			}
			if len(nums) != 2 {
				return nil, arityError("%s requires exactly 2 arguments, got %d", name, len(nums))
			}
			return Bool(pred(nums[0], nums[1])), nil
		})
	}
	cmp("<", func(a, b Number) bool { return a < b })
	cmp(">", func(a, b Number) bool { return a > b })
	cmp("<=", func(a, b Number) bool { return a <= b })
	cmp(">=", func(a, b Number) bool { return a >= b })

	native("not", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, arityError("not requires exactly 1 argument, got %d", len(args))
		}
		return Bool(!IsTruthy(args[0])), nil
	})

	native("min", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("min", args, 2)
		if err != nil {
			return nil, err
		}
		result := nums[0]
		for _, n := range nums[1:] {
			if n < result {
				result = n
			}
		}
		return result, nil
	})

	native("max", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numbers("max", args, 2)
		if err != nil {
			return nil, err
		}
		result := nums[0]
		for _, n := range nums[1:] {
			if n > result {
				result = n
			}
		}
		return result, nil
	})

	unary := func(name string, fn func(Number) Number) {
		native(name, func(args []Value, _ *Environment) (Value, error) {
			nums, err := numbers(name, args, 1)
			if err != nil {
				return nil, err
			}
			if len(nums) != 1 {
				return nil, arityError("%s requires exactly 1 argument, got %d", name, len(nums))
			}
			return fn(nums[0]), nil
		})
	}
	unary("inc", func(n Number) Number { return n + 1 })
	unary("dec", func(n Number) Number { return n - 1 })
	unary("abs", func(n Number) Number {
		if n < 0 {
			return -n
		}
		return n
	})
	unary("square", func(n Number) Number { return n * n })
	unary("cube", func(n Number) Number { return n * n * n })

	predicate := func(name string, fn func(Number) bool) {
		native(name, func(args []Value, _ *Environment) (Value, error) {
			nums, err := numbers(name, args, 1)
			if err != nil {
				return nil, err
			}
			if len(nums) != 1 {
				return nil, arityError("%s requires exactly 1 argument, got %d", name, len(nums))
			}
			return Bool(fn(nums[0])), nil
		})
	}
	predicate("zero?", func(n Number) bool { return n == 0 })
	predicate("pos?", func(n Number) bool { return n > 0 })
	predicate("neg?", func(n Number) bool { return n < 0 })
	predicate("even?", func(n Number) bool { return int64(n)%2 == 0 })
	predicate("odd?", func(n Number) bool { return int64(n)%2 != 0 })
}

func numbers(op string, args []Value, minArity int) ([]Number, error) {
	if len(args) < minArity {
		return nil, arityError("%s requires at least %d argument(s), got %d", op, minArity, len(args))
	}
	nums := make([]Number, len(args))
	for i, a := range args {
		n, ok := a.(Number)
		if !ok {
			return nil, typeError("%s expects numbers, got %s", op, typeName(a))
		}
		nums[i] = n
	}
	return nums, nil
}
