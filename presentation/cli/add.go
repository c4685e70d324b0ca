package cli

import (
	"fmt"

	"ghost_tester/domain/entities"
	"ghost_tester/domain/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type addOptions struct {
	name     string
	kind     string
	value    string
	action   string
	wait     string
	text     string
	force    bool
	multiple bool
}

func newAddCmd(v *viper.Viper) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append one step to the generated test without opening a browser",
		Example: `  ghost-tester add --name CC --locator id --value cc --action click --wait be.visible
  ghost-tester add --name Email --locator tag --value input --action type --text me@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := opts.step()
			if err != nil {
				return err
			}

			s, err := openSession(v)
			if err != nil {
				return err
			}
			defer s.Close()

			code, err := s.project.AddStep(step, s.cfg.TargetURL)
			if err != nil {
				return err
			}
			s.rememberPreferences()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[POM] %s\n", code.PageObject)
			fmt.Fprintf(out, "[SPEC] %s\n", code.Step)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "accessor name on the page object (exported Go identifier)")
	f.StringVar(&opts.kind, "locator", string(entities.LocatorID), "locator kind: id, text, tag or class")
	f.StringVar(&opts.value, "value", "", "locator value")
	f.StringVar(&opts.action, "action", string(entities.ActionClick), "click, type, hover, scroll, assert-visible, wait or wait-click")
	f.StringVar(&opts.wait, "wait", string(entities.WaitVisible), "None, be.visible, exist or be.enabled")
	f.StringVar(&opts.text, "text", "", "text to type for the type action")
	f.BoolVar(&opts.force, "force", false, "skip actionability checks")
	f.BoolVar(&opts.multiple, "multiple", false, "apply the action to every matching element")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func (o addOptions) step() (entities.Step, error) {
	if err := validation.ValidateAccessorName(o.name); err != nil {
		return entities.Step{}, err
	}

	kind, ok := entities.ParseLocatorKind(o.kind)
	if !ok {
		return entities.Step{}, fmt.Errorf("unknown locator kind %q", o.kind)
	}

	action, ok := entities.ParseActionType(o.action)
	if !ok {
		return entities.Step{}, fmt.Errorf("unknown action %q", o.action)
	}

	wait, ok := entities.ParseWaitState(o.wait)
	if !ok {
		return entities.Step{}, fmt.Errorf("unknown wait state %q", o.wait)
	}

	return entities.Step{
		Accessor: o.name,
		Locator:  entities.Locator{Kind: kind, Value: o.value},
		Action:   action,
		Wait:     wait,
		Force:    o.force,
		Multiple: o.multiple,
		Text:     o.text,
	}, nil
}
