package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/money"
)

// optString returns a pointer to the flag value only when the flag was given.
func optString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func optBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}

// amountFlag reads an amount given either in sen (name) or in ringgit
// (name+"-rm").
func amountFlag(flags *pflag.FlagSet, name string) (int64, error) {
	if flags.Changed(name + "-rm") {
		major, _ := flags.GetString(name + "-rm")
		minor, err := money.ToMinor(major)
		if err != nil {
			return 0, fmt.Errorf("--%s-rm: %w", name, err)
		}
		return minor, nil
	}
	return flags.GetInt64(name)
}

func addAmountFlags(cmd *cobra.Command, name, usage string) {
	cmd.Flags().Int64(name, 0, usage+" in sen (10000 = RM 100.00)")
	cmd.Flags().String(name+"-rm", "", usage+" in ringgit, e.g. 100.00")
	cmd.MarkFlagsMutuallyExclusive(name, name+"-rm")
	cmd.MarkFlagsOneRequired(name, name+"-rm")
}

func newGetCommand(a *app, tool, short string) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, tool, &dto.GetByIDInput{ID: args[0]})
		},
	}
}

func newCollectionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "collection", Short: "Manage collections"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			title, _ := flags.GetString("title")
			splits, _ := flags.GetStringArray("split")

			in := &dto.CreateCollectionInput{
				Title:       title,
				SplitHeader: optBool(flags, "split-header"),
			}
			for _, raw := range splits {
				sp, err := ParseSplit(raw)
				if err != nil {
					return err
				}
				in.SplitPayments = append(in.SplitPayments, sp)
			}
			return a.invoke(cmd, "create_collection", in)
		},
	}
	create.Flags().String("title", "", "Collection title")
	create.Flags().Bool("split-header", false, "Enable split header")
	create.Flags().StringArray("split", nil, "Split payment EMAIL:ORDER[:fixed=SEN|:variable=PERCENT] (repeatable)")
	_ = create.MarkFlagRequired("title")

	cmd.AddCommand(newGetCommand(a, "get_collection", "Get a collection by ID"), create)
	return cmd
}

func newBillCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "bill", Short: "Manage bills"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			amount, err := amountFlag(flags, "amount")
			if err != nil {
				return err
			}

			in := &dto.CreateBillInput{
				Amount:          amount,
				Mobile:          optString(flags, "mobile"),
				RedirectURL:     optString(flags, "redirect-url"),
				Deliver:         optBool(flags, "deliver"),
				Reference1Label: optString(flags, "reference-1-label"),
				Reference1:      optString(flags, "reference-1"),
				Reference2Label: optString(flags, "reference-2-label"),
				Reference2:      optString(flags, "reference-2"),
			}
			in.CollectionID, _ = flags.GetString("collection-id")
			in.Email, _ = flags.GetString("email")
			in.Name, _ = flags.GetString("name")
			in.CallbackURL, _ = flags.GetString("callback-url")
			in.Description, _ = flags.GetString("description")
			in.DueAt, _ = flags.GetString("due-at")

			return a.invoke(cmd, "create_bill", in)
		},
	}
	f := create.Flags()
	for _, name := range []string{"collection-id", "email", "name", "callback-url", "description", "due-at"} {
		f.String(name, "", "")
		_ = create.MarkFlagRequired(name)
	}
	f.Lookup("due-at").Usage = "Due date (YYYY-MM-DD)"
	for _, name := range []string{"mobile", "redirect-url", "reference-1-label", "reference-1", "reference-2-label", "reference-2"} {
		f.String(name, "", "")
	}
	f.Bool("deliver", false, "Have Billplz send the bill by email/SMS")
	addAmountFlags(create, "amount", "Bill amount")

	cmd.AddCommand(newGetCommand(a, "get_bill", "Get a bill by ID"), create)
	return cmd
}

func newBankCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "bank", Short: "Bank operations"}

	fpxList := &cobra.Command{
		Use:   "fpx-list",
		Short: "List FPX banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, "get_fpx_banks", &dto.EmptyInput{})
		},
	}

	verify := &cobra.Command{
		Use:   "verify ACCOUNT_NUMBER",
		Short: "Get bank account verification status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, "get_bank_verification", &dto.GetBankVerificationInput{AccountNumber: args[0]})
		},
	}

	create := &cobra.Command{
		Use:   "create-verification",
		Short: "Create a bank account verification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			in := &dto.CreateBankVerificationInput{}
			in.Name, _ = flags.GetString("name")
			in.IDNo, _ = flags.GetString("id-no")
			in.AccNo, _ = flags.GetString("acc-no")
			in.Code, _ = flags.GetString("code")
			in.Organization, _ = flags.GetBool("organization")
			return a.invoke(cmd, "create_bank_verification", in)
		},
	}
	create.Flags().String("name", "", "Account holder name")
	create.Flags().String("id-no", "", "Identity number (IC/passport)")
	create.Flags().String("acc-no", "", "Bank account number")
	create.Flags().String("code", "", "Bank SWIFT code")
	create.Flags().Bool("organization", false, "Organization account")
	for _, name := range []string{"name", "id-no", "acc-no", "code"} {
		_ = create.MarkFlagRequired(name)
	}

	cmd.AddCommand(fpxList, verify, create)
	return cmd
}

func newPayoutCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "payout", Short: "Manage payouts"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a payout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			total, err := amountFlag(flags, "total")
			if err != nil {
				return err
			}

			in := &dto.CreatePayoutInput{Total: total}
			in.CollectionID, _ = flags.GetString("collection-id")
			in.BankCode, _ = flags.GetString("bank-code")
			in.AccNo, _ = flags.GetString("acc-no")
			in.IDNo, _ = flags.GetString("id-no")
			in.Name, _ = flags.GetString("name")
			in.Description, _ = flags.GetString("description")
			return a.invoke(cmd, "create_payout", in)
		},
	}
	for _, name := range []string{"collection-id", "bank-code", "acc-no", "id-no", "name", "description"} {
		create.Flags().String(name, "", "")
		_ = create.MarkFlagRequired(name)
	}
	addAmountFlags(create, "total", "Payout total")

	cmd.AddCommand(newGetCommand(a, "get_payout", "Get a payout by ID"), create)
	return cmd
}

func newPayoutCollectionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "payout-collection", Short: "Manage payout collections"}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a payout collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			return a.invoke(cmd, "create_payout_collection", &dto.CreatePayoutCollectionInput{Title: title})
		},
	}
	create.Flags().String("title", "", "Payout collection title")
	_ = create.MarkFlagRequired("title")

	cmd.AddCommand(newGetCommand(a, "get_payout_collection", "Get a payout collection by ID"), create)
	return cmd
}
