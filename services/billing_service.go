package services

import (
	"errors"
	"log"
	"os"

	"geramenu/models"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/subscription"
	"gorm.io/gorm"
)

func InitStripe() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Printf("STRIPE_SECRET_KEY not set, billing endpoints will fail")
	}
}

// BillingService is a pass-through to Stripe. Each call persists the
// processor-assigned ids back onto the owner's account record.
type BillingService struct {
	db *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{db: db}
}

func (s *BillingService) loadUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		log.Printf("billing: user %d lookup failed: %v", userID, err)
		return nil, ErrStoreUnavailable
	}
	return &user, nil
}

// CreateCustomer creates a Stripe customer with the given payment method as
// default and stores the customer id on the account.
func (s *BillingService) CreateCustomer(userID uint, paymentMethodID string) (string, error) {
	if paymentMethodID == "" {
		return "", errors.New("payment method is required")
	}
	user, err := s.loadUser(userID)
	if err != nil {
		return "", err
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email:         stripe.String(user.Email),
		PaymentMethod: stripe.String(paymentMethodID),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	if err != nil {
		log.Printf("billing: create customer failed for user %d: %v", userID, err)
		return "", errors.New("could not create customer")
	}

	user.StripeCustomerID = cust.ID
	if err := s.db.Save(user).Error; err != nil {
		log.Printf("billing: saving customer id failed for user %d: %v", userID, err)
		return "", ErrStoreUnavailable
	}
	return cust.ID, nil
}

// CreateSubscription subscribes the account's customer to a plan with a
// 7-day trial that cancels when no payment method was attached.
func (s *BillingService) CreateSubscription(userID uint, planID string) (string, error) {
	if planID == "" {
		return "", errors.New("plan is required")
	}
	user, err := s.loadUser(userID)
	if err != nil {
		return "", err
	}
	if user.StripeCustomerID == "" {
		return "", errors.New("no customer on file")
	}

	sub, err := subscription.New(&stripe.SubscriptionParams{
		Customer: stripe.String(user.StripeCustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(planID)},
		},
		TrialPeriodDays: stripe.Int64(7),
		TrialSettings: &stripe.SubscriptionTrialSettingsParams{
			EndBehavior: &stripe.SubscriptionTrialSettingsEndBehaviorParams{
				MissingPaymentMethod: stripe.String("cancel"),
			},
		},
	})
	if err != nil {
		log.Printf("billing: create subscription failed for user %d: %v", userID, err)
		return "", errors.New("could not create subscription")
	}

	user.StripeSubscriptionID = sub.ID
	user.PlanID = planID
	if err := s.db.Save(user).Error; err != nil {
		log.Printf("billing: saving subscription id failed for user %d: %v", userID, err)
		return "", ErrStoreUnavailable
	}
	return sub.ID, nil
}

// UpdateSubscription swaps the plan on the account's existing subscription.
func (s *BillingService) UpdateSubscription(userID uint, planID string) (string, error) {
	if planID == "" {
		return "", errors.New("plan is required")
	}
	user, err := s.loadUser(userID)
	if err != nil {
		return "", err
	}
	if user.StripeSubscriptionID == "" {
		return "", errors.New("no subscription on file")
	}

	sub, err := subscription.Update(user.StripeSubscriptionID, &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(planID)},
		},
	})
	if err != nil {
		log.Printf("billing: update subscription failed for user %d: %v", userID, err)
		return "", errors.New("could not update subscription")
	}

	user.StripeSubscriptionID = sub.ID
	user.PlanID = planID
	if err := s.db.Save(user).Error; err != nil {
		log.Printf("billing: saving subscription id failed for user %d: %v", userID, err)
		return "", ErrStoreUnavailable
	}
	return sub.ID, nil
}

// CancelSubscription cancels at Stripe and clears the stored id.
func (s *BillingService) CancelSubscription(userID uint) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}
	if user.StripeSubscriptionID == "" {
		return errors.New("no subscription on file")
	}

	if _, err := subscription.Cancel(user.StripeSubscriptionID, nil); err != nil {
		log.Printf("billing: cancel subscription failed for user %d: %v", userID, err)
		return errors.New("could not cancel subscription")
	}

	user.StripeSubscriptionID = ""
	user.PlanID = ""
	if err := s.db.Save(user).Error; err != nil {
		log.Printf("billing: clearing subscription id failed for user %d: %v", userID, err)
		return ErrStoreUnavailable
	}
	return nil
}
