// Command verify checks the service's database wiring end to end: it
// migrates the payments table, optionally seeds demo rows, and runs every
// analysis tool once against live data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/njagi/paylens/infra"
	paymentrepo "github.com/njagi/paylens/infra/repository/payment"
	"github.com/njagi/paylens/pkg/config"
	"github.com/njagi/paylens/pkg/tools"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed).SprintFunc()
	head = color.New(color.FgCyan, color.Bold).SprintFunc()
)

func main() {
	seed := flag.Bool("seed", false, "insert demo payment rows before verifying")
	phone := flag.String("phone", "", "restrict tool queries to one consumer phone number")
	flag.Parse()

	if err := run(*seed, *phone); err != nil {
		log.Fatal(err)
	}
}

func run(seed bool, phone string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println(head("PAYMENT DATA VERIFICATION"))

	if err := db.AutoMigrate(&paymentrepo.Payment{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Printf("%s end_user_payments table migrated\n", pass("✓"))

	if seed {
		if err := seedDemoRows(db); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		fmt.Printf("%s demo rows inserted\n", pass("✓"))
	}

	var count int64
	if err := db.Model(&paymentrepo.Payment{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count query failed: %w", err)
	}
	fmt.Printf("%s total payments in DB: %d\n", pass("✓"), count)

	return smokeTestTools(db, phone)
}

func seedDemoRows(db *gorm.DB) error {
	name1 := "Safaricom Ltd"
	name2 := "Jane Wambui"
	now := time.Now()
	rows := []paymentrepo.Payment{
		{
			ConsumerUID:         uuid.NewString(),
			TransactionID:       uuid.NewString(),
			Name:                &name1,
			IsBusiness:          true,
			Direction:           "outgoing",
			Amount:              decimal.RequireFromString("100.00"),
			SenderID:            "MPESA",
			CountryCode:         "KE",
			ConsumerPhoneNumber: "254700000001",
			PaidAt:              &now,
		},
		{
			ConsumerUID:         uuid.NewString(),
			TransactionID:       uuid.NewString(),
			Name:                &name2,
			IsBusiness:          false,
			Direction:           "incoming",
			Amount:              decimal.RequireFromString("50.50"),
			SenderID:            "AIRTELMONEY",
			CountryCode:         "GH",
			ConsumerPhoneNumber: "233200000002",
			PaidAt:              &now,
		},
	}
	return db.Create(&rows).Error
}

// smokeTestTools runs each tool once with its default parameters,
// printing a condensed view of the result.
func smokeTestTools(db *gorm.DB, phone string) error {
	ctx := context.Background()
	registry := tools.New(paymentrepo.New(db), slog.Default())

	fmt.Println(head("\nFINANCIAL TOOLS SMOKE TEST"))

	calls := []struct {
		name   tools.Name
		params map[string]any
	}{
		{tools.SpendingSummary, map[string]any{"period": "this_month", "direction": "outgoing"}},
		{tools.PaymentsByRecipient, map[string]any{"name": "Safaricom", "limit": 5}},
		{tools.TopRecipients, map[string]any{"direction": "outgoing", "limit": 5, "period": "all_time"}},
		{tools.SpendingByCategory, map[string]any{"period": "this_month"}},
		{tools.PaymentTrends, map[string]any{"granularity": "month", "limit": 6}},
	}

	failures := 0
	for i, call := range calls {
		fmt.Printf("\n%d. %s\n", i+1, call.name)
		result, err := registry.Execute(ctx, call.name, call.params, phone)
		if err != nil {
			failures++
			fmt.Printf("  %s %v\n", fail("✗"), err)
			continue
		}
		switch v := result.(type) {
		case map[string]any:
			fmt.Printf("  %s total=%v count=%v period=%v\n",
				pass("✓"), v["total"], v["count"], v["period"])
		case []map[string]any:
			fmt.Printf("  %s %d rows\n", pass("✓"), len(v))
			for j, row := range v {
				if j == 3 {
					fmt.Printf("    ... and %d more\n", len(v)-3)
					break
				}
				fmt.Printf("    - %v\n", row)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d tool(s) failed", failures)
	}
	fmt.Printf("\n%s all tools verified\n", pass("✓"))
	return nil
}
