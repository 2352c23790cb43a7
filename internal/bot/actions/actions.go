// Package actions decodes inline-keyboard callback payloads into a tagged
// union of action variants. The payload string is parsed exactly once at the
// transport boundary; everything past internal/bot matches on Action.Kind.
package actions

import "strings"

// Callback payload constants. Prefixed payloads carry an argument after the
// underscore (category name, ISO date, currency symbol, month selector).
const (
	DataMenu            = "goto_menu"
	DataHelp            = "goto_help"
	DataCategoriesMenu  = "goto_categories"
	DataTransactionsMenu = "goto_transactions"
	DataReportsMenu     = "goto_reports"
	DataSettingsMenu    = "goto_settings"
	DataCurrencyMenu    = "menu_setting_valuta"
	DataNewCategoryList = "menu_categorie_nuovalista"
	DataNewCategory     = "menu_categorie_nuovacat"
	DataBack            = "back"

	DataEditCategory    = "cambia_categoria"
	DataEditDate        = "cambia_data"
	DataEditDescription = "cambia_descrizione"
	DataEditAmount      = "cambia_importo"
	DataSave            = "salva_transazione"
	DataCancel          = "annulla_transazione"

	PrefixCategory     = "cat_"
	PrefixDate         = "data_"
	PrefixCurrency     = "valuta_"
	PrefixTransactions = "transazioni_"
	PrefixReports      = "reports_"

	// Argument of a PrefixDate payload asking for free-text date entry.
	ArgCustomDate = "custom"
)

// Kind discriminates the action variants.
type Kind int

const (
	Unknown Kind = iota

	// Entry points: valid in any conversation state, restart the flow.
	Menu
	Help
	CategoriesMenu
	TransactionsMenu
	ReportsMenu
	SettingsMenu
	CurrencyMenu
	NewCategoryList
	NewCategory

	// State-scoped actions.
	Back
	EditCategory
	EditDate
	EditDescription
	EditAmount
	Save
	Cancel
	PickCategory // Arg = category name
	PickDate     // Arg = YYYY-MM-DD or ArgCustomDate
	PickCurrency // Arg = symbol or "none"
	ListMonth    // Arg = YYYY-MM
	ReportMonth  // Arg = YYYY-MM
)

// Action is one decoded callback.
type Action struct {
	Kind Kind
	Arg  string
}

// IsEntryPoint reports whether the action restarts the conversation
// regardless of the current state.
func (a Action) IsEntryPoint() bool {
	switch a.Kind {
	case Menu, Help, CategoriesMenu, TransactionsMenu, ReportsMenu,
		SettingsMenu, CurrencyMenu, NewCategoryList, NewCategory:
		return true
	}
	return false
}

// Parse decodes a raw callback payload.
func Parse(data string) Action {
	switch data {
	case DataMenu:
		return Action{Kind: Menu}
	case DataHelp:
		return Action{Kind: Help}
	case DataCategoriesMenu:
		return Action{Kind: CategoriesMenu}
	case DataTransactionsMenu:
		return Action{Kind: TransactionsMenu}
	case DataReportsMenu:
		return Action{Kind: ReportsMenu}
	case DataSettingsMenu:
		return Action{Kind: SettingsMenu}
	case DataCurrencyMenu:
		return Action{Kind: CurrencyMenu}
	case DataNewCategoryList:
		return Action{Kind: NewCategoryList}
	case DataNewCategory:
		return Action{Kind: NewCategory}
	case DataBack:
		return Action{Kind: Back}
	case DataEditCategory:
		return Action{Kind: EditCategory}
	case DataEditDate:
		return Action{Kind: EditDate}
	case DataEditDescription:
		return Action{Kind: EditDescription}
	case DataEditAmount:
		return Action{Kind: EditAmount}
	case DataSave:
		return Action{Kind: Save}
	case DataCancel:
		return Action{Kind: Cancel}
	}

	for _, p := range []struct {
		prefix string
		kind   Kind
	}{
		{PrefixCategory, PickCategory},
		{PrefixDate, PickDate},
		{PrefixCurrency, PickCurrency},
		{PrefixTransactions, ListMonth},
		{PrefixReports, ReportMonth},
	} {
		if strings.HasPrefix(data, p.prefix) {
			return Action{Kind: p.kind, Arg: strings.TrimPrefix(data, p.prefix)}
		}
	}

	return Action{Kind: Unknown, Arg: data}
}
