package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"ghost_tester/domain/entities"
)

// RenderAccessor returns the page object method that locates loc under name
func RenderAccessor(name string, loc entities.Locator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s locates %s.\n", name, collapseSpace(loc.Selector()))
	fmt.Fprintf(&b, "func (p *PageObjects) %s() playwright.Locator {\n", name)
	fmt.Fprintf(&b, "\treturn %s\n", locatorExpr(loc))
	b.WriteString("}\n")
	return b.String()
}

// collapseSpace joins the fields of s with single spaces so s fits on one line
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func locatorExpr(loc entities.Locator) string {
	if loc.Kind == entities.LocatorText {
		return fmt.Sprintf("p.page.GetByText(%s)", strconv.Quote(loc.Value))
	}
	return fmt.Sprintf("p.page.Locator(%s)", strconv.Quote(loc.Selector()))
}

// RenderStep returns the Go statements that replay step inside the
// generated test. The wait condition is asserted before the action.
func RenderStep(step entities.Step) (string, error) {
	if step.Accessor == "" {
		return "", fmt.Errorf("step has no accessor")
	}
	target := "p." + step.Accessor + "()"

	var lines []string
	if step.Action == entities.ActionWait {
		lines = append(lines, "// wait for element to be ready")
	}

	// Asserting visibility twice is redundant.
	if !(step.Action == entities.ActionAssertVisible && step.Wait == entities.WaitVisible) {
		waitTarget := target
		if step.Multiple {
			waitTarget += ".First()"
		}
		if line := waitAssertion(step.Wait, waitTarget); line != "" {
			lines = append(lines, line)
		}
	}

	if step.Action == entities.ActionWait {
		if step.Wait == entities.WaitNone || step.Wait == "" {
			waitTarget := target
			if step.Multiple {
				waitTarget += ".First()"
			}
			lines = append(lines, fmt.Sprintf("require.NoError(t, %s.WaitFor())", waitTarget))
		}
		return strings.Join(lines, "\n"), nil
	}

	if !step.Multiple {
		action, err := actionLines(step, target)
		if err != nil {
			return "", err
		}
		lines = append(lines, action...)
		return strings.Join(lines, "\n"), nil
	}

	action, err := actionLines(step, "item")
	if err != nil {
		return "", err
	}
	lines = append(lines,
		"{",
		fmt.Sprintf("\titems, err := %s.All()", target),
		"\trequire.NoError(t, err)",
		"\tfor _, item := range items {",
	)
	for _, l := range action {
		lines = append(lines, "\t\t"+l)
	}
	lines = append(lines, "\t}", "}")

	return strings.Join(lines, "\n"), nil
}

func waitAssertion(wait entities.WaitState, target string) string {
	var matcher string
	switch wait {
	case entities.WaitVisible:
		matcher = "ToBeVisible"
	case entities.WaitExist:
		matcher = "ToBeAttached"
	case entities.WaitEnabled:
		matcher = "ToBeEnabled"
	default:
		return ""
	}
	return fmt.Sprintf("require.NoError(t, expect.Locator(%s).%s())", target, matcher)
}

func actionLines(step entities.Step, target string) ([]string, error) {
	switch step.Action {
	case entities.ActionClick:
		return []string{call(target, "Click", options("LocatorClickOptions", step.Force))}, nil

	case entities.ActionWaitClick:
		return []string{call(target, "Click", options("LocatorClickOptions", true))}, nil

	case entities.ActionTypeText:
		text := strconv.Quote(step.Text)
		fill := options("LocatorFillOptions", step.Force)
		if fill != "" {
			text += ", " + fill
		}
		return []string{
			call(target, "Clear", options("LocatorClearOptions", step.Force)),
			call(target, "Fill", text),
		}, nil

	case entities.ActionHover:
		return []string{call(target, "Hover", options("LocatorHoverOptions", step.Force))}, nil

	case entities.ActionScroll:
		return []string{call(target, "ScrollIntoViewIfNeeded", "")}, nil

	case entities.ActionAssertVisible:
		return []string{fmt.Sprintf("require.NoError(t, expect.Locator(%s).ToBeVisible())", target)}, nil

	default:
		return nil, fmt.Errorf("unknown action: %s", step.Action)
	}
}

func call(target, method, args string) string {
	return fmt.Sprintf("require.NoError(t, %s.%s(%s))", target, method, args)
}

func options(typeName string, force bool) string {
	if !force {
		return ""
	}
	return fmt.Sprintf("playwright.%s{Force: playwright.Bool(true)}", typeName)
}
