package i18n

var english = map[string]string{
	"choose_account_type":             "Choose Your Account Type",
	"select_dashboard":                "Select the dashboard that best suits your needs",
	"farmer_dashboard":                "Farmer Dashboard",
	"individual_dashboard":            "Individual Dashboard",
	"company_dashboard":               "Company Dashboard",
	"farmer_desc":                     "Agricultural insights and financial management for farmers",
	"individual_desc":                 "Personal finance management and investment tracking",
	"company_desc":                    "Business analytics and financial management",
	"crop_analytics":                  "Crop Analytics",
	"weather_insights":                "Weather Insights",
	"market_prices":                   "Market Prices",
	"expense_tracking":                "Expense Tracking",
	"budget_planning":                 "Budget Planning",
	"investment_goals":                "Investment Goals",
	"business_analytics":              "Business Analytics",
	"financial_reports":               "Financial Reports",
	"team_management":                 "Team Management",
	"access_dashboard":                "Access Dashboard",
	"total_income":                    "Total Income",
	"total_expenses":                  "Total Expenses",
	"remaining_balance":               "Remaining Balance",
	"monthly_net":                     "Monthly Net",
	"expense_categories":              "Expense Categories",
	"expense_trends":                  "Expense Trends",
	"add_transaction":                 "Add Transaction",
	"amount":                          "Amount",
	"category":                        "Category",
	"description":                     "Description",
	"transaction_type":                "Transaction Type",
	"income":                          "Income",
	"expense":                         "Expense",
	"submit":                          "Submit",
	"dashboard":                       "Dashboard",
	"logout":                          "Logout",
	"farmer_login":                    "Farmer Login",
	"individual_login":                "Individual Login",
	"company_login":                   "Company Login",
	"all_rights_reserved":             "All rights reserved",
	"privacy_policy":                  "Privacy Policy",
	"terms_of_service":                "Terms of Service",
	"contact_us":                      "Contact Us",
	"remember_me":                     "Remember me",
	"forgot_password":                 "Forgot your password?",
	"sign_in":                         "Sign in",
	"register":                        "Register",
	"create_account":                  "Create Account",
	"already_have_account":            "Already have an account?",
	"dont_have_account":               "Don't have an account?",
	"or_continue_with":                "Or continue with",
	"google":                          "Google",
	"apple":                           "Apple",
	"invalid_credentials":             "Invalid email or password",
	"error_loading_transactions":      "Error loading transaction data",
	"error_loading_agricultural_data": "Error loading agricultural data",
	"error_loading_company_data":      "Error loading company data",
	"error_loading_individual_data":   "Error loading individual data",
}

var telugu = map[string]string{
	"choose_account_type":             "మీ ఖాతా రకాన్ని ఎంచుకోండి",
	"select_dashboard":                "మీ అవసరాలకు సరిపోయే డాష్‌బోర్డ్‌ను ఎంచుకోండి",
	"farmer_dashboard":                "రైతు డాష్‌బోర్డ్",
	"individual_dashboard":            "వ్యక్తిగత డాష్‌బోర్డ్",
	"company_dashboard":               "కంపెనీ డాష్‌బోర్డ్",
	"farmer_desc":                     "రైతులకు వ్యవసాయ అంతర్దృష్టులు మరియు ఆర్థిక నిర్వహణ",
	"individual_desc":                 "వ్యక్తిగత ఆర్థిక నిర్వహణ మరియు పెట్టుబడి ట్రాకింగ్",
	"company_desc":                    "వ్యాపార విశ్లేషణలు మరియు ఆర్థిక నిర్వహణ",
	"crop_analytics":                  "పంట విశ్లేషణలు",
	"weather_insights":                "వాతావరణ అంతర్దృష్టులు",
	"market_prices":                   "మార్కెట్ ధరలు",
	"expense_tracking":                "ఖర్చుల ట్రాకింగ్",
	"budget_planning":                 "బడ్జెట్ ప్రణాళిక",
	"investment_goals":                "పెట్టుబడి లక్ష్యాలు",
	"business_analytics":              "వ్యాపార విశ్లేషణలు",
	"financial_reports":               "ఆర్థిక నివేదికలు",
	"team_management":                 "టీమ్ నిర్వహణ",
	"access_dashboard":                "డాష్‌బోర్డ్‌ను యాక్సెస్ చేయండి",
	"total_income":                    "మొత్తం ఆదాయం",
	"total_expenses":                  "మొత్తం ఖర్చులు",
	"remaining_balance":               "మిగిలిన నిల్వ",
	"monthly_net":                     "నెలవారీ నికర",
	"expense_categories":              "ఖర్చుల వర్గాలు",
	"expense_trends":                  "ఖర్చుల ధోరణులు",
	"add_transaction":                 "లావాదేవీని జోడించండి",
	"amount":                          "మొత్తం",
	"category":                        "వర్గం",
	"description":                     "వివరణ",
	"transaction_type":                "లావాదేవీ రకం",
	"income":                          "ఆదాయం",
	"expense":                         "ఖర్చు",
	"submit":                          "సమర్పించండి",
	"dashboard":                       "డాష్‌బోర్డ్",
	"logout":                          "లాగ్అవుట్",
	"farmer_login":                    "రైతు లాగిన్",
	"individual_login":                "వ్యక్తిగత లాగిన్",
	"company_login":                   "కంపెనీ లాగిన్",
	"all_rights_reserved":             "అన్ని హక్కులు రిజర్వ్ చేయబడ్డాయి",
	"privacy_policy":                  "గోప్యతా విధానం",
	"terms_of_service":                "సేవా నిబంధనలు",
	"contact_us":                      "మమ్మల్ని సంప్రదించండి",
	"remember_me":                     "నన్ను గుర్తుంచుకో",
	"forgot_password":                 "పాస్‌వర్డ్ మర్చిపోయారా?",
	"sign_in":                         "సైన్ ఇన్",
	"register":                        "నమోదు",
	"create_account":                  "ఖాతాను సృష్టించండి",
	"already_have_account":            "ఇప్పటికే ఖాతా ఉందా?",
	"dont_have_account":               "ఖాతా లేదా?",
	"or_continue_with":                "లేదా వీటితో కొనసాగించండి",
	"google":                          "గూగుల్",
	"apple":                           "ఆపిల్",
	"invalid_credentials":             "చెల్లని ఇమెయిల్ లేదా పాస్‌వర్డ్",
	"error_loading_transactions":      "లావాదేవీల డేటాను లోడ్ చేయడంలో లోపం",
	"error_loading_agricultural_data": "వ్యవసాయ డేటాను లోడ్ చేయడంలో లోపం",
	"error_loading_company_data":      "కంపెనీ డేటాను లోడ్ చేయడంలో లోపం",
	"error_loading_individual_data":   "వ్యక్తిగత డేటాను లోడ్ చేయడంలో లోపం",
}
