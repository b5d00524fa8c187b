package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/darimac/printers-console/internal/api"
	"github.com/darimac/printers-console/internal/config"
	"github.com/darimac/printers-console/internal/db"
	"github.com/darimac/printers-console/internal/finance"
	"github.com/darimac/printers-console/internal/migrations"
	"github.com/darimac/printers-console/internal/pricing"
	"github.com/darimac/printers-console/internal/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `Usage: console <command> [flags]

Commands:
  login     authenticate against the backend and persist the session
  logout    clear the session (notifies the backend best-effort)
  whoami    show the logged-in user and token expiry
  loans     list loans with their derived monthly payments
  quote     price a print job (digital | markup | sublimation)
  loan      loan math (emi | schedule)`)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return errors.New("missing command")
	}

	cfg := config.Load()
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := context.Background()

	switch args[0] {
	case "login":
		return runLogin(ctx, cfg, log, args[1:], stdin, stdout, stderr)
	case "logout":
		return runLogout(ctx, cfg, log, stdout)
	case "whoami":
		return runWhoami(ctx, cfg, log, stdout)
	case "loans":
		return runLoans(ctx, cfg, log, stdout)
	case "quote":
		return runQuote(args[1:], stdout, stderr)
	case "loan":
		return runLoan(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// openSession wires the local state database and the session manager the
// same way for every authenticated command.
func openSession(cfg config.Config, log *zap.Logger) (*session.Manager, func(), error) {
	database, err := db.Open(cfg.StateDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.Up(database); err != nil {
		database.Close()
		return nil, nil, err
	}

	httpc := &http.Client{Timeout: cfg.HTTPTimeout}
	mgr, err := session.NewManager(cfg.APIBaseURL, httpc, session.NewStore(database), log)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return mgr, func() { database.Close() }, nil
}

func runLogin(ctx context.Context, cfg config.Config, log *zap.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	user := fs.String("user", "", "Username or email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" {
		fmt.Fprintln(stdout, "Usage: console login -user <username or email> [-password <password>]")
		fs.PrintDefaults()
		return errors.New("missing required flag: user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	mgr, closeFn, err := openSession(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	u, err := mgr.Login(ctx, *user, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Logged in as %s\n", u.Username)
	return nil
}

func runLogout(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	mgr, closeFn, err := openSession(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mgr.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Logged out")
	return nil
}

func runWhoami(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	mgr, closeFn, err := openSession(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	u, err := mgr.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s <%s> role=%s\n", u.Username, u.Email, u.Role)
	if exp, ok := mgr.TokenExpiry(); ok {
		fmt.Fprintf(stdout, "access token expires %s\n", exp.Format(time.RFC3339))
	}
	return nil
}

func runLoans(ctx context.Context, cfg config.Config, log *zap.Logger, stdout io.Writer) error {
	mgr, closeFn, err := openSession(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	client := api.New(cfg.APIBaseURL, mgr, log)
	loans, err := client.ListLoans(ctx)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok {
			return errors.New(apiErr.UserMessage())
		}
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLENDER\tPRINCIPAL\tRATE\tTERM\tSTATUS\tMONTHLY")
	for _, l := range loans {
		fmt.Fprintf(tw, "%d\t%s\tLKR %.2f\t%.2f%%\t%d\t%s\tLKR %.2f\n",
			l.ID, l.Lender, l.PrincipalAmount, l.InterestRate, l.LoanTermMonths, l.Status, l.MonthlyPayment())
	}
	return tw.Flush()
}

func runQuote(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: console quote <digital|markup|sublimation> [flags]")
	}

	switch args[0] {
	case "digital":
		fs := flag.NewFlagSet("quote digital", flag.ContinueOnError)
		fs.SetOutput(stderr)
		material := fs.String("material", "", "Material (FLEX, MATTE_STICKER, GLOSS_STICKER, FABRIC, LUMINOUS, BACKLIT, OTHER)")
		quality := fs.String("quality", "", "Quality tier (PASS_4, PASS_6, PASS_8)")
		sqft := fs.Float64("sqft", 0, "Printed area in square feet")
		expenses := fs.Float64("expenses", 0, "Itemized expenses total")
		total := fs.Float64("total", 0, "Customer total, if already agreed (left alone when set)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		m, q := pricing.Material(*material), pricing.Quality(*quality)
		if !m.Valid() {
			return fmt.Errorf("unknown material %q", *material)
		}
		if !q.Valid() {
			return fmt.Errorf("unknown quality %q", *quality)
		}
		if *sqft <= 0 {
			return errors.New("sqft must be greater than 0")
		}

		materialCost := pricing.MaterialCost(m, q, *sqft)
		lines := []pricing.ExpenseLine{{Description: "other", Amount: *expenses}}
		suggested := pricing.FillTotalIfEmpty(*total, materialCost, lines)
		fmt.Fprintf(stdout, "unit cost:      LKR %.2f / sq ft\n", pricing.UnitCost(m, q))
		fmt.Fprintf(stdout, "material cost:  LKR %.2f\n", materialCost)
		fmt.Fprintf(stdout, "expenses:       LKR %.2f\n", *expenses)
		fmt.Fprintf(stdout, "total amount:   LKR %.2f\n", suggested)
		return nil

	case "markup":
		fs := flag.NewFlagSet("quote markup", flag.ContinueOnError)
		fs.SetOutput(stderr)
		base := fs.Float64("base", 0, "Base cost (supplier job amount or entered base)")
		expenses := fs.Float64("expenses", 0, "Itemized expenses total")
		profit := fs.Float64("profit", 0, "Profit percentage")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		printQuote(stdout, pricing.Aggregate([]pricing.ExpenseLine{{Amount: *expenses}}, *base, *profit))
		return nil

	case "sublimation":
		fs := flag.NewFlagSet("quote sublimation", flag.ContinueOnError)
		fs.SetOutput(stderr)
		qty := fs.Int("qty", 0, "Quantity")
		unitPrice := fs.Float64("unit-price", 0, "Unit price")
		expenses := fs.Float64("expenses", 0, "Itemized expenses total")
		profit := fs.Float64("profit", 0, "Profit percentage")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		base := pricing.SublimationBase(*qty, *unitPrice)
		printQuote(stdout, pricing.Aggregate([]pricing.ExpenseLine{{Amount: *expenses}}, base, *profit))
		return nil

	default:
		return fmt.Errorf("unknown quote type %q", args[0])
	}
}

func printQuote(stdout io.Writer, q pricing.Quote) {
	fmt.Fprintf(stdout, "subtotal:  LKR %.2f\n", q.Subtotal)
	fmt.Fprintf(stdout, "profit:    LKR %.2f\n", q.Profit)
	fmt.Fprintf(stdout, "total:     LKR %.2f\n", q.Total)
}

func runLoan(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: console loan <emi|schedule> [flags]")
	}

	fs := flag.NewFlagSet("loan "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.Float64("principal", 0, "Principal amount")
	rate := fs.Float64("rate", 0, "Annual interest rate in percent")
	term := fs.Int("term", 0, "Term in months")
	start := fs.String("start", "", "Start date (yyyy-mm-dd, schedule only)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *principal <= 0 || *term <= 0 {
		return errors.New("principal and term must be greater than 0")
	}

	switch args[0] {
	case "emi":
		fmt.Fprintf(stdout, "monthly payment: LKR %.2f\n", finance.MonthlyPayment(*principal, *rate, *term))
		return nil
	case "schedule":
		startDate := time.Now()
		if *start != "" {
			var err error
			startDate, err = time.Parse("2006-01-02", *start)
			if err != nil {
				return fmt.Errorf("parse start date: %w", err)
			}
		}
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tDUE\tPAYMENT\tINTEREST\tPRINCIPAL\tBALANCE")
		for _, p := range finance.Schedule(*principal, *rate, *term, startDate) {
			fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
				p.Number, p.DueDate.Format("2006-01-02"), p.Amount, p.Interest, p.Principal, p.Balance)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown loan command %q", args[0])
	}
}

func readPassword(stdin io.Reader) (string, error) {
	// Prefer no-echo input when stdin is a terminal.
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	// Fallback for pipes and tests.
	sc := bufio.NewScanner(stdin)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
