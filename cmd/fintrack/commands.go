package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fintrack/internal/api"
	"fintrack/internal/money"
	"fintrack/internal/validate"
)

var (
	loginUsername string
	loginPassword string

	addName        string
	addAmount      string
	addDescription string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials against the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := validate.LoginForm{Username: loginUsername, Password: loginPassword}
		if errs := form.Validate(); len(errs) > 0 {
			for _, msg := range errs {
				fmt.Fprintln(os.Stderr, msg)
			}
			return fmt.Errorf("invalid input")
		}

		_, client, err := oneShotClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		user, err := client.LoginUser(ctx, loginUsername, loginPassword)
		if err != nil {
			logger.Error("login request failed", zap.Error(err))
			return fmt.Errorf("An error occurred. Please try again.")
		}
		if user == nil {
			return fmt.Errorf("Invalid username or password")
		}

		fmt.Printf("Signed in as %s (id %s)\n", user.Username, user.ID)
		return nil
	},
}

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List and manage expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listExpenses()
	},
}

var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listExpenses()
	},
}

var expensesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := oneShotClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		expense, err := client.FetchExpense(ctx, args[0])
		if err != nil {
			logger.Error("fetch expense failed", zap.String("id", args[0]), zap.Error(err))
			return fmt.Errorf("Failed to load expense details")
		}

		fmt.Printf("%s\n", expense.Name)
		fmt.Printf("Amount:      %s\n", money.Format(cfg.UI.Currency, money.Parse(expense.Amount)))
		fmt.Printf("Description: %s\n", expense.Description)
		if expense.CreatedAt != "" {
			fmt.Printf("Created:     %s\n", expense.CreatedAt)
		}
		return nil
	},
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := validate.ExpenseForm{Name: addName, Amount: addAmount, Description: addDescription}
		if errs := form.Validate(); len(errs) > 0 {
			for _, msg := range errs {
				fmt.Fprintln(os.Stderr, msg)
			}
			return fmt.Errorf("invalid input")
		}

		_, client, err := oneShotClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		expense, err := client.CreateExpense(ctx, api.CreateExpensePayload{
			Name:        addName,
			Amount:      addAmount,
			Description: addDescription,
		})
		if err != nil {
			logger.Error("create expense failed", zap.Error(err))
			return fmt.Errorf("Failed to create expense")
		}

		fmt.Printf("Created expense %s (id %s)\n", expense.Name, expense.ID)
		return nil
	},
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := oneShotClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.DeleteExpense(ctx, args[0]); err != nil {
			logger.Error("delete expense failed", zap.String("id", args[0]), zap.Error(err))
			return fmt.Errorf("Failed to delete expense")
		}

		fmt.Printf("Deleted expense %s\n", args[0])
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print expense totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := oneShotClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		expenses, err := client.FetchExpenses(ctx)
		if err != nil {
			logger.Error("fetch expenses failed", zap.Error(err))
			return fmt.Errorf("Failed to load expenses")
		}

		var total float64
		for _, e := range expenses {
			total += money.Parse(e.Amount)
		}
		average := 0.0
		if len(expenses) > 0 {
			average = total / float64(len(expenses))
		}

		fmt.Printf("Total:   %s\n", money.Format(cfg.UI.Currency, total))
		fmt.Printf("Average: %s\n", money.Format(cfg.UI.Currency, average))
		fmt.Printf("Entries: %d\n", len(expenses))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (required)")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	expensesAddCmd.Flags().StringVar(&addName, "name", "", "Expense name (required)")
	expensesAddCmd.Flags().StringVar(&addAmount, "amount", "", "Amount, e.g. 12.50 (required)")
	expensesAddCmd.Flags().StringVar(&addDescription, "description", "", "Description (required)")
	expensesAddCmd.MarkFlagRequired("name")
	expensesAddCmd.MarkFlagRequired("amount")
	expensesAddCmd.MarkFlagRequired("description")

	expensesCmd.AddCommand(expensesListCmd)
	expensesCmd.AddCommand(expensesShowCmd)
	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesRmCmd)
}

func listExpenses() error {
	cfg, client, err := oneShotClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	expenses, err := client.FetchExpenses(ctx)
	if err != nil {
		logger.Error("fetch expenses failed", zap.Error(err))
		return fmt.Errorf("Failed to load expenses")
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAMOUNT\tDESCRIPTION")
	for _, e := range expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.ID, e.Name, money.Format(cfg.UI.Currency, money.Parse(e.Amount)), e.Description)
	}
	return w.Flush()
}
