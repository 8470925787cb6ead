package domain

// OnboardingStep names one stage of the account setup sequence.
type OnboardingStep string

const (
	StepWelcomeMessage       OnboardingStep = "WelcomeMessage"
	StepPreStarterSelection  OnboardingStep = "PreStarterSelection"
	StepStarterSelection     OnboardingStep = "StarterSelection"
	StepSelectStarter        OnboardingStep = "SelectStarter"
	StepTappingEgg           OnboardingStep = "TappingEgg"
	StepBeastHatched         OnboardingStep = "BeastHatched"
	StepHelloBeast           OnboardingStep = "HelloBeast"
	StepFeedBeast            OnboardingStep = "FeedBeast"
	StepMoodXpExplanation    OnboardingStep = "MoodXpExplanation"
	StepPreMineShards        OnboardingStep = "PreMineShards"
	StepMineShards           OnboardingStep = "MineShards"
	StepFeedBeastAgain       OnboardingStep = "FeedBeastAgain"
	StepFeedBeastMore        OnboardingStep = "FeedBeastMore"
	StepBeastLevelUp         OnboardingStep = "BeastLevelUp"
	StepCoinSpendingUpgrades OnboardingStep = "CoinSpendingUpgrades"
	StepCoinEarningAway      OnboardingStep = "CoinEarningAway"
	StepMoreLevelMoreCoins   OnboardingStep = "MoreLevelMoreCoins"
	StepBeastHappinessAway   OnboardingStep = "BeastHappinessAway"
	StepBeastHappinessAway2  OnboardingStep = "BeastHappinessAway2"
	StepThatsAll             OnboardingStep = "ThatsAll"
	StepCompleteOnboarding   OnboardingStep = "CompleteOnboarding"
)

// DefaultStarter is the beast picked during onboarding.
const DefaultStarter = "Digby"

type OnboardingAction string

const (
	OnboardingUpdateStep    OnboardingAction = "update_step"
	OnboardingSelectStarter OnboardingAction = "select_starter"
	OnboardingComplete      OnboardingAction = "complete"
)

// OnboardingTransition is one entry of the onboarding chain.
type OnboardingTransition struct {
	Step   OnboardingStep
	Action OnboardingAction
	// Starter is only set for OnboardingSelectStarter.
	Starter string
}

// OnboardingSequence is the strict order acknowledged by the backend.
var OnboardingSequence = []OnboardingTransition{
	{Step: StepPreStarterSelection, Action: OnboardingUpdateStep},
	{Step: StepStarterSelection, Action: OnboardingUpdateStep},
	{Step: StepSelectStarter, Action: OnboardingSelectStarter, Starter: DefaultStarter},
	{Step: StepTappingEgg, Action: OnboardingUpdateStep},
	{Step: StepBeastHatched, Action: OnboardingUpdateStep},
	{Step: StepHelloBeast, Action: OnboardingUpdateStep},
	{Step: StepFeedBeast, Action: OnboardingUpdateStep},
	{Step: StepMoodXpExplanation, Action: OnboardingUpdateStep},
	{Step: StepPreMineShards, Action: OnboardingUpdateStep},
	{Step: StepMineShards, Action: OnboardingUpdateStep},
	{Step: StepFeedBeastAgain, Action: OnboardingUpdateStep},
	{Step: StepFeedBeastMore, Action: OnboardingUpdateStep},
	{Step: StepBeastLevelUp, Action: OnboardingUpdateStep},
	{Step: StepCoinSpendingUpgrades, Action: OnboardingUpdateStep},
	{Step: StepCoinEarningAway, Action: OnboardingUpdateStep},
	{Step: StepMoreLevelMoreCoins, Action: OnboardingUpdateStep},
	{Step: StepBeastHappinessAway, Action: OnboardingUpdateStep},
	{Step: StepBeastHappinessAway2, Action: OnboardingUpdateStep},
	{Step: StepThatsAll, Action: OnboardingUpdateStep},
	{Step: StepCompleteOnboarding, Action: OnboardingComplete},
}
