// Package ui renders the RecipeBliss terminal interface with Bubble Tea.
//
// # Structure
//
// Model is the root tea.Model. Navigation state that survives restarts
// (active tab, open recipe, cook-mode step) lives in the state store;
// the model keeps only widget state: text inputs, viewport, cursors,
// and open prompts. Every write goes through Store.Mutate, so the
// store remains the single source of truth and its subscribers see
// every change the UI makes.
//
// Views map to the store's tabs: recipe browser (with search, filter
// panel, and multi-select), recipe detail with step-by-step cook mode,
// the grouped shopping list, and settings. A new-recipe form and the
// share-import prompt overlay whichever tab is active.
//
// # Theme
//
// GetTheme resolves light or dark lipgloss palettes. The store pushes
// appearance decisions through a ThemeFeed (its ThemeApplier), so a
// theme-mode change on the settings tab restyles the UI on the next
// message without the model knowing how the decision was made.
//
// # Share imports
//
// Share parameters the app was opened with are resolved once at model
// construction: a recipe reference navigates directly, an encoded
// basket or recipe opens a confirmation prompt. Malformed links
// degrade to a status line, never a failed start.
package ui
