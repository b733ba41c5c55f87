package i18n

var catalogs = map[string]map[string]string{
	"id": {
		"app_title":       "SeedMart - Sistem Kasir",
		"login_title":     "Masuk",
		"prompt_username": "Nama pengguna",
		"prompt_password": "Kata sandi",
		"welcome":         "Selamat datang, %s (%s)",
		"retry_login":     "Coba lagi? (y/t)",
		"login_again":     "Masuk lagi? (y/t)",
		"logged_out":      "Anda telah keluar.",
		"goodbye":         "Sampai jumpa.",
		"prompt_choice":   "Pilihan",
		"answer_yes_no":   "Jawab y atau t.",
		"cancelled":       "Dibatalkan.",
		"logout":          "Keluar",
		"back":            "Kembali",

		"admin_menu":          "Menu Admin",
		"manager_menu":        "Menu Pengelola Toko",
		"cashier_menu":        "Menu Kasir",
		"menu_users":          "Kelola pengguna",
		"menu_inventory":      "Inventaris",
		"menu_journal":        "Jurnal transaksi",
		"menu_reports":        "Laporan penjualan",
		"menu_reprint":        "Cetak ulang struk",
		"menu_my_products":    "Produk saya",
		"menu_add_product":    "Tambah produk",
		"menu_edit_product":   "Ubah produk",
		"menu_delete_product": "Hapus produk",
		"menu_catalog":        "Katalog",
		"menu_new_sale":       "Transaksi baru",
		"menu_today":          "Transaksi hari ini",

		"users_list":          "Daftar pengguna",
		"users_add":           "Tambah pengguna",
		"users_edit":          "Ubah pengguna",
		"users_delete":        "Hapus pengguna",
		"role_admin":          "Admin",
		"role_manager":        "Pengelola Toko",
		"role_cashier":        "Kasir",
		"prompt_role":         "Peran",
		"prompt_email":        "Email",
		"prompt_user_id":      "ID pengguna",
		"prompt_new_password": "Kata sandi baru",
		"hint_keep_empty":     "Kosongkan untuk mempertahankan nilai lama.",
		"user_created":        "Pengguna %s dibuat dengan ID %d.",
		"user_updated":        "Pengguna %s diperbarui.",
		"confirm_delete_user": "Hapus pengguna ini? (y/t)",
		"user_deleted":        "Pengguna dihapus.",

		"prompt_product_name":         "Nama produk",
		"prompt_stock":                "Stok",
		"prompt_price":                "Harga",
		"prompt_discount":             "Diskon (%)",
		"prompt_category_id":          "ID kategori",
		"prompt_product_id":           "ID produk",
		"product_created":             "Produk %s ditambahkan dengan ID %d.",
		"product_updated":             "Produk %s diperbarui.",
		"confirm_delete_product_name": "Produk: %s",
		"confirm_delete_product":      "Hapus produk ini? (y/t)",
		"product_deleted":             "Produk dihapus.",

		"no_products_available": "Tidak ada produk yang tersedia.",
		"prompt_sale_product":   "ID produk (0 = selesai)",
		"prompt_quantity":       "Jumlah",
		"added_to_cart":         "%s x%d ditambahkan (%s).",
		"remaining_stock":       "Sisa stok %s: %d",
		"cart_title":            "Keranjang",
		"prompt_payment_method": "ID metode pembayaran",
		"confirm_process_sale":  "Proses transaksi? (y/t)",
		"sale_cancelled":        "Transaksi dibatalkan.",
		"sale_failed":           "Transaksi gagal, tidak ada yang disimpan.",
		"today_total":           "Total hari ini",

		"journal_title":         "%d transaksi terakhir",
		"prompt_transaction_id": "ID transaksi",
		"report_daily":          "Laporan harian",
		"report_weekly":         "Laporan mingguan",
		"report_monthly":        "Laporan bulanan",
		"report_best_sellers":   "Produk terlaris",
		"prompt_day":            "Tanggal (YYYY-MM-DD)",
		"prompt_week":           "Minggu (YYYY-Www)",
		"prompt_month":          "Bulan (YYYY-MM)",
		"report_title":          "Ringkasan Penjualan",
		"top_sellers_title":     "%d produk terlaris",
		"report_period":         "Periode",
		"report_count":          "Jumlah transaksi",
		"report_revenue":        "Pendapatan",
		"report_completed":      "Selesai",
		"report_failed":         "Gagal",

		"receipt_cashier":  "Kasir",
		"receipt_date":     "Tanggal",
		"receipt_payment":  "Bayar",
		"receipt_discount": "diskon",
		"receipt_total":    "Total",
		"receipt_thanks":   "Terima kasih atas kunjungan Anda!",

		"col_id":             "ID",
		"col_no":             "No",
		"col_product":        "Produk",
		"col_category":       "Kategori",
		"col_stock":          "Stok",
		"col_price":          "Harga",
		"col_discount":       "Diskon",
		"col_net_price":      "Harga Akhir",
		"col_owner":          "Pemilik",
		"col_payment_method": "Metode Pembayaran",
		"col_username":       "Nama Pengguna",
		"col_email":          "Email",
		"col_role":           "Peran",
		"col_date":           "Tanggal",
		"col_status":         "Status",
		"col_cashier":        "Kasir",
		"col_quantity":       "Jumlah",
		"col_subtotal":       "Subtotal",
		"col_total":          "Total",
		"col_rank":           "Peringkat",
		"col_sold":           "Terjual",
		"no_data":            "Tidak ada data.",

		"field_username":       "Nama pengguna",
		"field_password":       "Kata sandi",
		"field_email":          "Email",
		"field_role":           "Peran",
		"field_name":           "Nama",
		"field_stock":          "Stok",
		"field_price":          "Harga",
		"field_discount":       "Diskon",
		"field_category":       "Kategori",
		"field_payment_method": "Metode pembayaran",
		"field_value":          "Nilai",

		"required":             "Wajib diisi.",
		"must_not_be_negative": "Tidak boleh negatif.",
		"must_be_positive":     "Harus lebih dari nol.",
		"out_of_range":         "Di luar rentang yang diizinkan.",
		"invalid_choice":       "Pilihan tidak valid.",
		"invalid_email":        "Format email tidak valid.",
		"invalid_number":       "Masukkan angka.",
		"invalid_period":       "Periode tidak valid.",

		"unauthorized":             "Anda tidak memiliki akses.",
		"operation_failed":         "Operasi gagal.",
		"product_unavailable":      "Produk tidak tersedia.",
		"invalid_quantity":         "Jumlah harus lebih dari nol.",
		"insufficient_stock":       "Stok tidak mencukupi.",
		"empty_cart":               "Keranjang kosong.",
		"payment_method_not_found": "Metode pembayaran tidak ditemukan.",
		"product_not_found":        "Produk tidak ditemukan.",
		"product_in_use":           "Produk sudah tercatat dalam transaksi.",
		"category_not_found":       "Kategori tidak ditemukan.",
		"transaction_not_found":    "Transaksi tidak ditemukan.",
		"invalid_credentials":      "Nama pengguna atau kata sandi salah.",
		"user_not_found":           "Pengguna tidak ditemukan.",
		"user_in_use":              "Pengguna masih memiliki produk atau transaksi.",
		"username_taken":           "Nama pengguna sudah dipakai.",
		"cannot_delete_self":       "Tidak dapat menghapus akun sendiri.",
	},
	"en": {
		"app_title":       "SeedMart - Point of Sale",
		"login_title":     "Login",
		"prompt_username": "Username",
		"prompt_password": "Password",
		"welcome":         "Welcome, %s (%s)",
		"retry_login":     "Try again? (y/n)",
		"login_again":     "Log in again? (y/n)",
		"logged_out":      "You have logged out.",
		"goodbye":         "Goodbye.",
		"prompt_choice":   "Choice",
		"answer_yes_no":   "Answer y or n.",
		"cancelled":       "Cancelled.",
		"logout":          "Log out",
		"back":            "Back",

		"admin_menu":          "Admin Menu",
		"manager_menu":        "Store Manager Menu",
		"cashier_menu":        "Cashier Menu",
		"menu_users":          "Manage users",
		"menu_inventory":      "Inventory",
		"menu_journal":        "Transaction journal",
		"menu_reports":        "Sales reports",
		"menu_reprint":        "Reprint receipt",
		"menu_my_products":    "My products",
		"menu_add_product":    "Add product",
		"menu_edit_product":   "Edit product",
		"menu_delete_product": "Delete product",
		"menu_catalog":        "Catalog",
		"menu_new_sale":       "New sale",
		"menu_today":          "Today's transactions",

		"users_list":          "List users",
		"users_add":           "Add user",
		"users_edit":          "Edit user",
		"users_delete":        "Delete user",
		"role_admin":          "Admin",
		"role_manager":        "Store manager",
		"role_cashier":        "Cashier",
		"prompt_role":         "Role",
		"prompt_email":        "Email",
		"prompt_user_id":      "User ID",
		"prompt_new_password": "New password",
		"hint_keep_empty":     "Leave empty to keep the current value.",
		"user_created":        "User %s created with ID %d.",
		"user_updated":        "User %s updated.",
		"confirm_delete_user": "Delete this user? (y/n)",
		"user_deleted":        "User deleted.",

		"prompt_product_name":         "Product name",
		"prompt_stock":                "Stock",
		"prompt_price":                "Price",
		"prompt_discount":             "Discount (%)",
		"prompt_category_id":          "Category ID",
		"prompt_product_id":           "Product ID",
		"product_created":             "Product %s added with ID %d.",
		"product_updated":             "Product %s updated.",
		"confirm_delete_product_name": "Product: %s",
		"confirm_delete_product":      "Delete this product? (y/n)",
		"product_deleted":             "Product deleted.",

		"no_products_available": "No products available.",
		"prompt_sale_product":   "Product ID (0 = done)",
		"prompt_quantity":       "Quantity",
		"added_to_cart":         "%s x%d added (%s).",
		"remaining_stock":       "Remaining stock of %s: %d",
		"cart_title":            "Cart",
		"prompt_payment_method": "Payment method ID",
		"confirm_process_sale":  "Process the sale? (y/n)",
		"sale_cancelled":        "Sale cancelled.",
		"sale_failed":           "Sale failed, nothing was saved.",
		"today_total":           "Today's total",

		"journal_title":         "Last %d transactions",
		"prompt_transaction_id": "Transaction ID",
		"report_daily":          "Daily report",
		"report_weekly":         "Weekly report",
		"report_monthly":        "Monthly report",
		"report_best_sellers":   "Best sellers",
		"prompt_day":            "Date (YYYY-MM-DD)",
		"prompt_week":           "Week (YYYY-Www)",
		"prompt_month":          "Month (YYYY-MM)",
		"report_title":          "Sales Summary",
		"top_sellers_title":     "Top %d products",
		"report_period":         "Period",
		"report_count":          "Transactions",
		"report_revenue":        "Revenue",
		"report_completed":      "Completed",
		"report_failed":         "Failed",

		"receipt_cashier":  "Cashier",
		"receipt_date":     "Date",
		"receipt_payment":  "Payment",
		"receipt_discount": "discount",
		"receipt_total":    "Total",
		"receipt_thanks":   "Thank you for shopping with us!",

		"col_id":             "ID",
		"col_no":             "No",
		"col_product":        "Product",
		"col_category":       "Category",
		"col_stock":          "Stock",
		"col_price":          "Price",
		"col_discount":       "Discount",
		"col_net_price":      "Net Price",
		"col_owner":          "Owner",
		"col_payment_method": "Payment Method",
		"col_username":       "Username",
		"col_email":          "Email",
		"col_role":           "Role",
		"col_date":           "Date",
		"col_status":         "Status",
		"col_cashier":        "Cashier",
		"col_quantity":       "Quantity",
		"col_subtotal":       "Subtotal",
		"col_total":          "Total",
		"col_rank":           "Rank",
		"col_sold":           "Sold",
		"no_data":            "No data.",

		"field_username":       "Username",
		"field_password":       "Password",
		"field_email":          "Email",
		"field_role":           "Role",
		"field_name":           "Name",
		"field_stock":          "Stock",
		"field_price":          "Price",
		"field_discount":       "Discount",
		"field_category":       "Category",
		"field_payment_method": "Payment method",
		"field_value":          "Value",

		"required":             "Required.",
		"must_not_be_negative": "Must not be negative.",
		"must_be_positive":     "Must be greater than zero.",
		"out_of_range":         "Out of the allowed range.",
		"invalid_choice":       "Invalid choice.",
		"invalid_email":        "Invalid email address.",
		"invalid_number":       "Enter a number.",
		"invalid_period":       "Invalid period.",

		"unauthorized":             "You are not allowed to do this.",
		"operation_failed":         "Operation failed.",
		"product_unavailable":      "Product is not available.",
		"invalid_quantity":         "Quantity must be greater than zero.",
		"insufficient_stock":       "Insufficient stock.",
		"empty_cart":               "The cart is empty.",
		"payment_method_not_found": "Payment method not found.",
		"product_not_found":        "Product not found.",
		"product_in_use":           "Product already appears in transactions.",
		"category_not_found":       "Category not found.",
		"transaction_not_found":    "Transaction not found.",
		"invalid_credentials":      "Invalid username or password.",
		"user_not_found":           "User not found.",
		"user_in_use":              "User still owns products or transactions.",
		"username_taken":           "Username already taken.",
		"cannot_delete_self":       "You cannot delete your own account.",
	},
}
