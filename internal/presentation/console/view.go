package console

import (
	"context"
	"fmt"
	"io"

	"github.com/sangkips/pos-register/internal/config"
	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/pkg/apperror"
)

// Register is the cashier-facing side of the register service
type Register interface {
	StartSale()
	EnterItem(ctx context.Context, itemID, quantity int) error
	RequestDiscount(ctx context.Context, customerID int) error
	EndSale() (entity.Money, bool)
	MakePayment(ctx context.Context, amount entity.Money) (*entity.Receipt, error)
	GetChange() entity.Money
	CurrentSnapshot() (entity.SaleSnapshot, bool)
}

// ErrorLogger records failures the cashier cannot act on
type ErrorLogger interface {
	LogError(err error)
}

// View plays a checkout script against the register, printing what the
// cashier would see
type View struct {
	register Register
	out      io.Writer
	errOut   io.Writer
	errorLog ErrorLogger
}

// NewView creates a new console view
func NewView(register Register, out, errOut io.Writer, errorLog ErrorLogger) *View {
	return &View{
		register: register,
		out:      out,
		errOut:   errOut,
		errorLog: errorLog,
	}
}

// Run executes every step of script in order. Step failures are reported
// and the script continues; only a cancelled context stops it early.
func (v *View) Run(ctx context.Context, script *config.Script) error {
	for _, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch step.Action {
		case config.ActionStart:
			v.startSale()
		case config.ActionItem:
			v.enterItem(ctx, step.ItemID, step.Quantity)
		case config.ActionDiscount:
			v.requestDiscount(ctx, step.CustomerID)
		case config.ActionEnd:
			v.endSale()
		case config.ActionPay:
			v.makePayment(ctx, step.Amount)
		case config.ActionChange:
			fmt.Fprintf(v.out, "Change to give the customer: %s\n", v.register.GetChange())
		default:
			fmt.Fprintf(v.errOut, "ERROR: unknown action %q\n", step.Action)
		}
	}
	return nil
}

func (v *View) startSale() {
	v.register.StartSale()
	fmt.Fprintln(v.out, "Started a new sale.")
}

func (v *View) enterItem(ctx context.Context, itemID, quantity int) {
	fmt.Fprintln(v.out)
	fmt.Fprintf(v.out, "Add %d item(s) with item id %d:\n", quantity, itemID)

	if err := v.register.EnterItem(ctx, itemID, quantity); err != nil {
		v.reportError(err)
		return
	}
	v.printRunningTotal()
}

func (v *View) requestDiscount(ctx context.Context, customerID int) {
	fmt.Fprintln(v.out)
	fmt.Fprintf(v.out, "Request discount for customer ID: %d\n", customerID)

	if err := v.register.RequestDiscount(ctx, customerID); err != nil {
		v.reportError(err)
		return
	}
	v.printRunningTotal()
}

func (v *View) endSale() {
	fmt.Fprintln(v.out)
	total, ok := v.register.EndSale()
	if !ok {
		fmt.Fprintln(v.errOut, "ERROR: there is no sale to end")
		return
	}
	fmt.Fprintf(v.out, "End sale. Total price (including VAT): %s\n", total)
}

func (v *View) makePayment(ctx context.Context, rawAmount string) {
	fmt.Fprintln(v.out)
	amount, err := entity.ParseMoney(rawAmount)
	if err != nil {
		v.reportError(apperror.NewInvalidInputError(err.Error()))
		return
	}

	fmt.Fprintf(v.out, "Pay: %s\n", amount)
	if _, err := v.register.MakePayment(ctx, amount); err != nil {
		v.reportError(err)
	}
}

func (v *View) printRunningTotal() {
	snap, ok := v.register.CurrentSnapshot()
	if !ok {
		return
	}
	fmt.Fprintf(v.out, "Running total: %s (VAT: %s)\n",
		snap.SubtotalBeforeTax.Plus(snap.AccumulatedTax), snap.AccumulatedTax)
}

// reportError shows the cashier a message. Failures the cashier cannot fix
// get a generic message and go to the error log.
func (v *View) reportError(err error) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound, apperror.KindPrecondition, apperror.KindInsufficientPayment, apperror.KindInvalidInput:
		fmt.Fprintf(v.errOut, "ERROR: %s\n", err)
	default:
		fmt.Fprintln(v.errOut, "ERROR: Operation failed. Please try again or contact support.")
		if v.errorLog != nil {
			v.errorLog.LogError(err)
		}
	}
}
