package render

// stylesheet is the static portion of the inline CSS. All brand-specific
// values flow through the :root custom properties emitted ahead of it.
const stylesheet = `* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--color-bg);
  color: var(--color-text);
  line-height: 1.5;
}
.hero {
  background-color: var(--color-primary);
  background-size: cover;
  background-position: center;
  color: #fff;
  text-align: center;
  padding: 48px 16px 36px;
}
.logo {
  width: 88px;
  height: 88px;
  border-radius: 50%;
  object-fit: cover;
  margin-bottom: 12px;
  border: 3px solid rgba(255, 255, 255, 0.6);
}
.logo-placeholder {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  font-size: 40px;
  background: var(--color-secondary);
}
.hero h1 { font-size: 1.9rem; text-shadow: 0 1px 3px rgba(0, 0, 0, 0.3); }
.tagline { opacity: 0.9; margin-top: 4px; }
.contact-bar {
  display: flex;
  justify-content: center;
  flex-wrap: wrap;
  gap: 16px;
  padding: 12px 16px;
  background: var(--color-secondary);
}
.contact-link { color: #fff; text-decoration: none; font-size: 0.9rem; }
.contact-link:hover { text-decoration: underline; }
.category-nav {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  overflow-x: auto;
  gap: 8px;
  padding: 10px 16px;
  background: var(--color-bg);
  border-bottom: 1px solid rgba(0, 0, 0, 0.08);
}
.nav-btn {
  flex: 0 0 auto;
  border: 1px solid var(--color-primary);
  border-radius: 999px;
  background: transparent;
  color: var(--color-primary);
  padding: 6px 14px;
  font-size: 0.9rem;
  cursor: pointer;
  white-space: nowrap;
}
.nav-btn.active { background: var(--color-primary); color: #fff; }
.menu { max-width: 720px; margin: 0 auto; padding: 16px; }
.category-section { padding: 20px 0; }
.category-section h2 { color: var(--color-primary); margin-bottom: 6px; }
.category-description { color: var(--color-secondary); margin-bottom: 12px; }
.no-items { color: var(--color-secondary); font-style: italic; padding: 12px 0; }
.item-grid { display: grid; gap: 12px; }
.item-card {
  display: flex;
  gap: 12px;
  background: #fff;
  border-radius: 12px;
  padding: 12px;
  box-shadow: 0 1px 4px rgba(0, 0, 0, 0.08);
}
.item-image {
  width: 84px;
  height: 84px;
  border-radius: 8px;
  object-fit: cover;
  flex-shrink: 0;
}
.item-image-placeholder {
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 32px;
  background: var(--color-bg);
}
.item-body { flex: 1; min-width: 0; }
.item-top { display: flex; justify-content: space-between; gap: 8px; }
.item-top h3 { font-size: 1.05rem; }
.item-price { text-align: right; white-space: nowrap; }
.price { color: var(--color-primary); font-weight: 600; }
.price-original { color: var(--color-secondary); font-size: 0.85rem; margin-right: 4px; }
.badge-row { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 4px; }
.badge {
  font-size: 0.7rem;
  padding: 2px 8px;
  border-radius: 999px;
  background: var(--color-accent);
  color: var(--color-text);
}
.badge-vegan, .badge-vegetarian { background: #C8E6C9; }
.badge-spicy { background: #FFCDD2; }
.badge-gluten-free { background: #FFF9C4; }
.badge-new { background: #BBDEFB; }
.item-description { color: var(--color-secondary); font-size: 0.9rem; margin-top: 6px; }
.item-calories { color: var(--color-secondary); font-size: 0.8rem; margin-top: 4px; }
.empty-state { text-align: center; padding: 64px 16px; }
.empty-icon { font-size: 48px; margin-bottom: 12px; }
.empty-state h2 { color: var(--color-primary); }
.empty-state p { color: var(--color-secondary); margin-top: 6px; }
footer {
  text-align: center;
  padding: 28px 16px;
  background: var(--color-primary);
  color: #fff;
}
.footer-name { font-weight: 600; }
.footer-address { opacity: 0.85; font-size: 0.9rem; margin-top: 4px; }
.social-row { margin-top: 10px; }
.social-link { color: #fff; margin: 0 6px; font-size: 0.9rem; }
.powered-by { opacity: 0.7; font-size: 0.8rem; margin-top: 14px; }
`
