package actions

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"goto_menu", Action{Kind: Menu}},
		{"goto_help", Action{Kind: Help}},
		{"goto_categories", Action{Kind: CategoriesMenu}},
		{"goto_transactions", Action{Kind: TransactionsMenu}},
		{"goto_reports", Action{Kind: ReportsMenu}},
		{"goto_settings", Action{Kind: SettingsMenu}},
		{"menu_setting_valuta", Action{Kind: CurrencyMenu}},
		{"menu_categorie_nuovalista", Action{Kind: NewCategoryList}},
		{"menu_categorie_nuovacat", Action{Kind: NewCategory}},
		{"back", Action{Kind: Back}},
		{"cambia_categoria", Action{Kind: EditCategory}},
		{"cambia_data", Action{Kind: EditDate}},
		{"cambia_descrizione", Action{Kind: EditDescription}},
		{"cambia_importo", Action{Kind: EditAmount}},
		{"salva_transazione", Action{Kind: Save}},
		{"annulla_transazione", Action{Kind: Cancel}},
		{"cat_🍔 Cibo", Action{Kind: PickCategory, Arg: "🍔 Cibo"}},
		{"data_2024-03-15", Action{Kind: PickDate, Arg: "2024-03-15"}},
		{"data_custom", Action{Kind: PickDate, Arg: ArgCustomDate}},
		{"valuta_€", Action{Kind: PickCurrency, Arg: "€"}},
		{"valuta_none", Action{Kind: PickCurrency, Arg: "none"}},
		{"transazioni_2024-03", Action{Kind: ListMonth, Arg: "2024-03"}},
		{"reports_2024-02", Action{Kind: ReportMonth, Arg: "2024-02"}},
		{"qualcosa_di_strano", Action{Kind: Unknown, Arg: "qualcosa_di_strano"}},
		{"", Action{Kind: Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			if got := Parse(tt.data); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestIsEntryPoint(t *testing.T) {
	entry := []string{
		"goto_menu", "goto_help", "goto_categories", "goto_transactions",
		"goto_reports", "goto_settings", "menu_setting_valuta",
		"menu_categorie_nuovalista", "menu_categorie_nuovacat",
	}
	for _, data := range entry {
		if !Parse(data).IsEntryPoint() {
			t.Errorf("Parse(%q) should be an entry point", data)
		}
	}

	scoped := []string{
		"back", "cambia_categoria", "salva_transazione",
		"cat_🍔 Cibo", "data_custom", "transazioni_2024-03",
	}
	for _, data := range scoped {
		if Parse(data).IsEntryPoint() {
			t.Errorf("Parse(%q) should not be an entry point", data)
		}
	}
}
