package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/libcat/ilsrecord/v1/ils"
	"github.com/libcat/ilsrecord/v1/record"
	"github.com/libcat/ilsrecord/v1/schema"
)

func (a *app) sniffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff",
		Short: "Print the detected wire format of the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			f, ok := record.Sniff(data)
			if !ok {
				return record.ErrUnrecognizedInput
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f)
			return err
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Decode the input as a record and render it in another format",
		Long: `Decode the input as a record and render it in another format.

The input format is sniffed unless --from is given. Hash output is printed
as YAML. With --load, input that cannot be decoded produces the record's
error-state defaults instead of failing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := lookupSchema(a.v.GetString("record"))
			if err != nil {
				return err
			}
			to, err := schema.ParseFormat(a.v.GetString("to"))
			if err != nil {
				return err
			}
			data, err := a.readInput(cmd)
			if err != nil {
				return err
			}

			opts := []record.Option{record.WithLogger(a.log)}
			if from := a.v.GetString("from"); from != "" {
				f, err := schema.ParseFormat(from)
				if err != nil {
					return err
				}
				opts = append(opts, record.WithFormat(f))
			}

			var rec *record.Record
			if a.v.GetBool("load") {
				rec = record.Load(s, data, opts...)
			} else if rec, err = record.New(s, data, opts...); err != nil {
				return err
			}
			if rec.IsError() {
				a.log.Warn("input could not be decoded, writing defaults", rec.Err(), map[string]interface{}{
					"record": s.Name(),
				})
			}
			return writeRecord(cmd, rec, to)
		},
	}
	cmd.Flags().String("record", "", "record schema name, see 'ilsconv schema'")
	cmd.Flags().String("to", schema.JSON.String(), "output format (json, xml, hash)")
	cmd.Flags().String("from", "", "input format, sniffed when empty")
	cmd.Flags().Bool("load", false, "write error-state defaults instead of failing")
	return cmd
}

func writeRecord(cmd *cobra.Command, rec *record.Record, f schema.Format) error {
	out, err := rec.Serialize(f)
	if err != nil {
		return err
	}
	var text []byte
	switch o := out.(type) {
	case []byte:
		text = o
	case map[string]any:
		if text, err = yaml.Marshal(o); err != nil {
			return fmt.Errorf("render hash: %w", err)
		}
	default:
		return fmt.Errorf("unexpected %s output %T", f, out)
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(text); err != nil {
		return err
	}
	if len(text) > 0 && text[len(text)-1] != '\n' {
		_, err = fmt.Fprintln(w)
	}
	return err
}

func (a *app) schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "List record schemas or describe one of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := a.v.GetString("record")
			if name == "" {
				for _, n := range ils.Schemas.Names() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
						return err
					}
				}
				return nil
			}
			s, err := lookupSchema(name)
			if err != nil {
				return err
			}
			f, err := schema.ParseFormat(a.v.GetString("format"))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ELEMENT\tKIND\tTYPE\tWIRE\tFRAMING\n")
			fmt.Fprintf(tw, "%s\troot\t\t%s\t\n", s.Name(), s.RootName(f))
			describe(tw, s.Describe(f), 1)
			return tw.Flush()
		},
	}
	cmd.Flags().String("record", "", "record schema name, all names are listed when empty")
	cmd.Flags().String("format", schema.JSON.String(), "format whose wire names are shown")
	return cmd
}

func describe(tw *tabwriter.Writer, descs []schema.Description, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, d := range descs {
		var framing []string
		if d.XMLAttr {
			framing = append(framing, "xml-attribute")
		}
		if d.Wrapped {
			framing = append(framing, "wrapped:"+d.Item)
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\n", indent, d.Name, d.Kind, d.Type, d.Wire, strings.Join(framing, ","))
		describe(tw, d.Children, depth+1)
	}
}

func lookupSchema(name string) (*schema.Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no record given", schema.ErrInvalidSchema)
	}
	s, ok := ils.Schemas.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown record %q, expected one of %s",
			schema.ErrInvalidSchema, name, strings.Join(ils.Schemas.Names(), ", "))
	}
	return s, nil
}
